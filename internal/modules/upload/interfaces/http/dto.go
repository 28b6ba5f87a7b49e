package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
)

// UploadResponse is the body of a successful POST /upload. ContentType is
// omitted when the type could not be determined.
type UploadResponse struct {
	Filename    string  `json:"filename"`
	SizeMB      float64 `json:"size_mb"`
	ContentType string  `json:"content_type,omitempty"`
}

// UploadRecordResponse is one entry of GET /uploads
type UploadRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	SizeMB      float64   `json:"size_mb"`
	ContentType string    `json:"content_type,omitempty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUploadResponse(u *domain.Upload) UploadResponse {
	return UploadResponse{
		Filename:    u.Filename,
		SizeMB:      u.SizeMB(),
		ContentType: u.ContentType,
	}
}

func toRecordResponses(uploads []domain.Upload) []UploadRecordResponse {
	out := make([]UploadRecordResponse, 0, len(uploads))
	for i := range uploads {
		u := &uploads[i]
		out = append(out, UploadRecordResponse{
			ID:          u.ID,
			Filename:    u.Filename,
			SizeMB:      u.SizeMB(),
			ContentType: u.ContentType,
			URL:         u.URL,
			CreatedAt:   u.CreatedAt,
		})
	}
	return out
}
