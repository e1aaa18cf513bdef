package storage

import (
	"bytes"
	"context"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinioStorage(client *minio.Client, bucket string) contracts.ObjectStorage {
	return &minioStorage{client: client, bucket: bucket}
}

func (s *minioStorage) Upload(ctx context.Context, objectKey, mimeType string, content []byte) error {
	reader := bytes.NewReader(content)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return exceptions.ErrStorageUpload(err)
	}
	return nil
}

func (s *minioStorage) Delete(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrStorageDelete(err)
	}
	return nil
}

func (s *minioStorage) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, expiry, nil)
	if err != nil {
		return "", exceptions.ErrStoragePresign(err)
	}
	return url.String(), nil
}
