package contracts

import (
	"context"
	"time"
)

type ObjectStorage interface {
	Upload(ctx context.Context, objectKey, mimeType string, content []byte) error
	Delete(ctx context.Context, objectKey string) error
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
