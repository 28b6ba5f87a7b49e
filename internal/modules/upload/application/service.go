package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	fsdomain "github.com/saransh1220/animal-drop/internal/modules/filestorage/domain"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
)

const (
	uploadFolder   = "uploads"
	defaultRecent  = 10
	maxRecent      = 50
	presignExpires = 15 * time.Minute
	sniffLen       = 512
	octetStream    = "application/octet-stream"
)

// FileStore is the part of the filestorage module this service needs
type FileStore interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64, folder string) (*fsdomain.File, error)
	Delete(ctx context.Context, key string) error
	GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// Input is one file taken from a multipart request
type Input struct {
	File        io.ReadSeeker
	Filename    string
	ContentType string
	Size        int64
}

// UploadService validates, stores and records uploads
type UploadService struct {
	files    FileStore
	repo     domain.Repository
	maxBytes int64
	logger   *log.Logger
}

// NewUploadService builds the service. repo may be nil, in which case uploads
// are stored but not recorded and history lookups return ErrHistoryDisabled.
func NewUploadService(files FileStore, repo domain.Repository, maxBytes int64, logger *log.Logger) *UploadService {
	if maxBytes <= 0 {
		maxBytes = domain.MaxUploadBytes
	}
	return &UploadService{files: files, repo: repo, maxBytes: maxBytes, logger: logger}
}

// MaxBytes is the per-file limit enforced by Store
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Store checks the size limit, stores the file and records it
func (s *UploadService) Store(ctx context.Context, in Input) (*domain.Upload, error) {
	if in.File == nil {
		uploadsTotal.WithLabelValues("missing").Inc()
		return nil, domain.ErrNoFile
	}
	if err := domain.CheckSize(in.Size, s.maxBytes); err != nil {
		uploadsTotal.WithLabelValues("too_large").Inc()
		return nil, err
	}

	contentType, err := detectContentType(in.File, in.ContentType)
	if err != nil {
		uploadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	stored, err := s.files.Upload(ctx, in.File, in.Filename, contentType, in.Size, uploadFolder)
	if err != nil {
		uploadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	upload := &domain.Upload{
		ID:          uuid.New(),
		Filename:    in.Filename,
		StorageKey:  stored.Key,
		URL:         stored.URL,
		Size:        in.Size,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, upload); err != nil {
			if delErr := s.files.Delete(ctx, stored.Key); delErr != nil {
				s.logger.Error("orphaned upload", "key", stored.Key, "err", delErr)
			}
			uploadsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("record upload: %w", err)
		}
	}

	uploadsTotal.WithLabelValues("ok").Inc()
	uploadSize.Observe(float64(in.Size))
	s.logger.Info("upload stored", "filename", in.Filename, "key", stored.Key, "size", in.Size, "content_type", contentType)
	return upload, nil
}

// Recent lists the newest uploads; limit is clamped to [1, 50], 0 means 10
func (s *UploadService) Recent(ctx context.Context, limit int) ([]domain.Upload, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	switch {
	case limit <= 0:
		limit = defaultRecent
	case limit > maxRecent:
		limit = maxRecent
	}
	return s.repo.ListRecent(ctx, limit)
}

// Locate returns a short-lived URL for a recorded upload
func (s *UploadService) Locate(ctx context.Context, id uuid.UUID) (string, error) {
	if s.repo == nil {
		return "", domain.ErrHistoryDisabled
	}
	upload, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.files.GetPresignedURL(ctx, upload.StorageKey, presignExpires)
}

// detectContentType trusts a specific declared type, otherwise sniffs the
// first bytes and rewinds. Unrecognised content yields "".
func detectContentType(r io.ReadSeeker, declared string) (string, error) {
	if declared != "" && declared != octetStream {
		return declared, nil
	}

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}
	if n == 0 {
		return "", nil
	}

	sniffed := http.DetectContentType(buf[:n])
	if sniffed == octetStream {
		return "", nil
	}
	return sniffed, nil
}
