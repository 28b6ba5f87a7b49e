package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
)

type PgUploadRepository struct {
	db *sqlx.DB
}

func NewUploadRepository(db *sqlx.DB) *PgUploadRepository {
	return &PgUploadRepository{db: db}
}

func (r *PgUploadRepository) Create(ctx context.Context, upload *domain.Upload) error {
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	if upload.CreatedAt.IsZero() {
		upload.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO uploads (id, filename, storage_key, url, size_bytes, content_type, created_at)
		VALUES (:id, :filename, :storage_key, :url, :size_bytes, :content_type, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, upload); err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

func (r *PgUploadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	var upload domain.Upload
	query := `SELECT id, filename, storage_key, url, size_bytes, content_type, created_at FROM uploads WHERE id = $1`

	if err := r.db.GetContext(ctx, &upload, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, fmt.Errorf("get upload: %w", err)
	}
	return &upload, nil
}

func (r *PgUploadRepository) ListRecent(ctx context.Context, limit int) ([]domain.Upload, error) {
	uploads := []domain.Upload{}
	query := `SELECT id, filename, storage_key, url, size_bytes, content_type, created_at FROM uploads ORDER BY created_at DESC LIMIT $1`

	if err := r.db.SelectContext(ctx, &uploads, query, limit); err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return uploads, nil
}
