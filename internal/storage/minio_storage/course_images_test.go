package minio_storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestImageObjectKey(t *testing.T) {
	id := uuid.MustParse("6f1c6a52-7f6e-4f57-9d7e-0c0b8a8b1a11")

	assert.Equal(t, "courses/6f1c6a52-7f6e-4f57-9d7e-0c0b8a8b1a11/image.png", ImageObjectKey(id, "Logo.PNG"))
	assert.Equal(t, "courses/6f1c6a52-7f6e-4f57-9d7e-0c0b8a8b1a11/image.bin", ImageObjectKey(id, "logo"))
}
