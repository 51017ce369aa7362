package elastic

import (
	"EduPlatform/internal/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
)

const defaultSearchSize = 10

type CourseSearchRepo struct {
	client *elasticsearch.Client
	index  string
}

func NewCourseSearchRepository(client *elasticsearch.Client, index string) *CourseSearchRepo {
	if index == "" {
		index = CourseIndex
	}
	return &CourseSearchRepo{client: client, index: index}
}

type courseDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func indexMapping() map[string]any {
	text := map[string]any{
		"type":            "text",
		"analyzer":        "edge_ngram_analyzer",
		"search_analyzer": "standard",
	}
	return map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"analyzer": map[string]any{
					"edge_ngram_analyzer": map[string]any{
						"tokenizer": "edge_ngram_tokenizer",
						"filter":    []string{"lowercase"},
					},
				},
				"tokenizer": map[string]any{
					"edge_ngram_tokenizer": map[string]any{
						"type":        "edge_ngram",
						"min_gram":    2,
						"max_gram":    20,
						"token_chars": []string{"letter", "digit"},
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"title":       text,
				"description": text,
			},
		},
	}
}

// SearchQuery is the request body used for course lookups.
func SearchQuery(query string, size int) map[string]any {
	if size <= 0 {
		size = defaultSearchSize
	}
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":                query,
				"fields":               []string{"title^3", "description"},
				"type":                 "best_fields",
				"fuzziness":            "AUTO",
				"operator":             "or",
				"minimum_should_match": "2<75%",
			},
		},
		"size": size,
	}
}

func (r *CourseSearchRepo) CreateIndexIfNotExist(ctx context.Context) error {
	existsReq := esapi.IndicesExistsRequest{Index: []string{r.index}}
	existsRes, err := existsReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}
	defer existsRes.Body.Close()

	switch {
	case existsRes.StatusCode == http.StatusNotFound:
	case existsRes.StatusCode >= 300:
		return fmt.Errorf("index existence check failed with status code %d", existsRes.StatusCode)
	default:
		return nil
	}

	body, err := json.Marshal(indexMapping())
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	req := esapi.IndicesCreateRequest{Index: r.index, Body: bytes.NewReader(body)}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("mapping creation failed: %s", res.String())
	}
	return nil
}

// Index creates or replaces the course document.
func (r *CourseSearchRepo) Index(ctx context.Context, course models.Course) error {
	data, err := json.Marshal(courseDocument{Title: course.Title, Description: course.Description})
	if err != nil {
		return fmt.Errorf("marshal doc: %w", err)
	}
	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: course.ID.String(),
		Refresh:    "true",
		Body:       bytes.NewReader(data),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (r *CourseSearchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	req := esapi.DeleteRequest{
		Index:      r.index,
		DocumentID: id.String(),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete error: %s", res.String())
	}
	return nil
}

func (r *CourseSearchRepo) Search(ctx context.Context, query string, size int) ([]uuid.UUID, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(SearchQuery(query, size)); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}
	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search error: %s", string(bodyBytes))
	}
	return decodeHits(res.Body)
}

func decodeHits(body io.Reader) ([]uuid.UUID, error) {
	var esRes struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&esRes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(esRes.Hits.Hits))
	for _, h := range esRes.Hits.Hits {
		if id, err := uuid.Parse(h.ID); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
