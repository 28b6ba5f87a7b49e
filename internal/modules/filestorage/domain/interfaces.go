package domain

import (
	"context"
	"io"
	"time"
)

// FileStorage is implemented by the local filesystem and S3/MinIO backends
type FileStorage interface {
	// UploadFile writes the object under key and returns its public URL
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	DeleteFile(ctx context.Context, key string) error

	// GetPresignedURL returns a temporary URL for reading the object
	GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)

	// GetKeyFromURL extracts the storage key from a public URL
	GetKeyFromURL(url string) (string, error)
}
