package elastic

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHitsSkipsForeignIDs(t *testing.T) {
	id := uuid.New()
	body := `{"hits":{"hits":[{"_id":"` + id.String() + `"},{"_id":"not-a-uuid"}]}}`

	ids, err := decodeHits(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
}

func TestSearchQueryDefaultsSize(t *testing.T) {
	q := SearchQuery("golang", 0)
	assert.Equal(t, defaultSearchSize, q["size"])

	q = SearchQuery("golang", 3)
	assert.Equal(t, 3, q["size"])
}
