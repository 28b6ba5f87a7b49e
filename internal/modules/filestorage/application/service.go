package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage/domain"
)

// FileService wraps a FileStorage with key generation
type FileService struct {
	storage domain.FileStorage
}

// NewFileService creates a new file service
func NewFileService(storage domain.FileStorage) *FileService {
	return &FileService{
		storage: storage,
	}
}

// Upload stores r under folder/<uuid><ext>, keeping only the extension of the
// client supplied name so nothing user controlled reaches the key.
func (s *FileService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64, folder string) (*domain.File, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := path.Join(folder, uuid.New().String()+ext)

	url, err := s.storage.UploadFile(ctx, key, r, contentType)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", filename, err)
	}

	return &domain.File{
		Key:         key,
		URL:         url,
		Name:        filename,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// Delete removes the object stored under key
func (s *FileService) Delete(ctx context.Context, key string) error {
	return s.storage.DeleteFile(ctx, key)
}

// GetPresignedURL generates a temporary URL for viewing
func (s *FileService) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.storage.GetPresignedURL(ctx, key, expiration)
}

// GetKeyFromURL extracts the storage key from a URL
func (s *FileService) GetKeyFromURL(fileURL string) (string, error) {
	return s.storage.GetKeyFromURL(fileURL)
}
