package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/saransh1220/animal-drop/internal/modules/upload/application"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
)

// UploadService is what the handler needs from the application layer
type UploadService interface {
	MaxBytes() int64
	Store(ctx context.Context, in application.Input) (*domain.Upload, error)
	Recent(ctx context.Context, limit int) ([]domain.Upload, error)
	Locate(ctx context.Context, id uuid.UUID) (string, error)
}
