package filestorage

import (
	"context"
	"fmt"

	"github.com/saransh1220/animal-drop/internal/modules/filestorage/application"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage/domain"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage/infrastructure/local"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage/infrastructure/s3"
	"github.com/saransh1220/animal-drop/internal/shared/infrastructure/config"
)

// Module represents the FileStorage module
type Module struct {
	service *application.FileService
	storage domain.FileStorage
}

// NewModule picks the S3 or local backend from configuration
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var storage domain.FileStorage

	if cfg.UseS3 {
		st, err := s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		storage = st
	} else {
		st, err := local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		storage = st
	}

	return &Module{
		service: application.NewFileService(storage),
		storage: storage,
	}, nil
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}
