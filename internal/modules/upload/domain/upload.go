package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MiB is one mebibyte; upload sizes are reported in these units.
const MiB = 1024 * 1024

// MaxUploadBytes is the default per-file limit (5 MiB). Files of exactly this
// size are accepted.
const MaxUploadBytes = 5 * MiB

// Upload is a stored file and the metadata returned to the client
type Upload struct {
	ID          uuid.UUID `db:"id"`
	Filename    string    `db:"filename"`
	StorageKey  string    `db:"storage_key"`
	URL         string    `db:"url"`
	Size        int64     `db:"size_bytes"`
	ContentType string    `db:"content_type"`
	CreatedAt   time.Time `db:"created_at"`
}

// SizeMB is the size in mebibytes, unrounded
func (u *Upload) SizeMB() float64 {
	return float64(u.Size) / MiB
}

// Repository persists upload records
type Repository interface {
	Create(ctx context.Context, upload *Upload) error
	GetByID(ctx context.Context, id uuid.UUID) (*Upload, error)
	ListRecent(ctx context.Context, limit int) ([]Upload, error)
}
