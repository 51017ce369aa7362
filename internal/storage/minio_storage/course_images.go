package minio_storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type ImageStorage struct {
	storage      *MinioStorage
	bucket       string
	presignedTTL time.Duration
}

func NewImageStorage(ctx context.Context, storage *MinioStorage, bucketName string, presignedTTL time.Duration) (*ImageStorage, error) {
	if err := storage.EnsureBucket(ctx, bucketName); err != nil {
		return nil, err
	}
	return &ImageStorage{storage: storage, bucket: bucketName, presignedTTL: presignedTTL}, nil
}

// ImageObjectKey is the object name of a course image with the given file name.
func ImageObjectKey(courseID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("courses/%s/image%s", courseID.String(), ext)
}

func (s *ImageStorage) UploadImage(
	ctx context.Context,
	courseID uuid.UUID,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (objectKey string, err error) {
	objectKey = ImageObjectKey(courseID, filename)

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(objectKey))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	_, err = s.storage.client.PutObject(
		ctx,
		s.bucket,
		objectKey,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to put image: %w", err)
	}
	return objectKey, nil
}

func (s *ImageStorage) ImageURL(ctx context.Context, objectKey string) (string, error) {
	presignedURL, err := s.storage.client.PresignedGetObject(
		ctx,
		s.bucket,
		objectKey,
		s.presignedTTL,
		make(url.Values),
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func (s *ImageStorage) DeleteImage(ctx context.Context, objectKey string) error {
	return s.storage.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}
