package course

import (
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"io"

	"github.com/google/uuid"
)

// ImageStore keeps uploaded course images. A nil ImageStore means object
// storage is not configured.
type ImageStore interface {
	ImageURL(ctx context.Context, objectKey string) (string, error)
	UploadImage(ctx context.Context, courseID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (objectKey string, err error)
	DeleteImage(ctx context.Context, objectKey string) error
}

// SearchIndex is the full text index over course titles and descriptions.
// A nil SearchIndex means search is not configured.
type SearchIndex interface {
	Index(ctx context.Context, course models.Course) error
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WithImageURL replaces the client supplied image URL with a presigned one
// when the course has an uploaded image. Presign failures fall back to the
// stored URL.
func WithImageURL(ctx context.Context, log logger.Log, images ImageStore, c models.Course) models.Course {
	if images == nil || c.ImageObjectKey == "" {
		return c
	}
	url, err := images.ImageURL(ctx, c.ImageObjectKey)
	if err != nil {
		log.Warn("failed to presign course image", "course_id", c.ID, logger.Err(err))
		return c
	}
	c.ImageURL = url
	return c
}
