package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/saransh1220/animal-drop/internal/modules/upload/application"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
)

const (
	formField = "file"
	// room for multipart headers and boundaries on top of the file limit
	envelopeBytes = 1 << 20
	memoryBytes   = 8 << 20
)

type UploadHandler struct {
	service UploadService
	logger  *log.Logger
}

func NewUploadHandler(service UploadService, logger *log.Logger) *UploadHandler {
	return &UploadHandler{service: service, logger: logger}
}

// Upload handles POST /upload. Failures are written as plain text so the page
// can show the body verbatim.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.service.MaxBytes()
	// The file is not measured when the body alone is over the limit.
	if r.ContentLength > limit+envelopeBytes {
		tooLarge := &domain.FileTooLargeError{Size: domain.SizeUnknown, Limit: limit}
		http.Error(w, tooLarge.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+envelopeBytes)

	if err := r.ParseMultipartForm(memoryBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			tooLarge := &domain.FileTooLargeError{Size: domain.SizeUnknown, Limit: limit}
			http.Error(w, tooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Warn("[UploadHandler.Upload] bad multipart body", "err", err)
		http.Error(w, "Invalid upload form.", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(formField)
	if err != nil {
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	upload, err := h.service.Store(r.Context(), application.Input{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		var tooLarge *domain.FileTooLargeError
		switch {
		case errors.As(err, &tooLarge):
			http.Error(w, tooLarge.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, domain.ErrNoFile):
			http.Error(w, "No file uploaded.", http.StatusBadRequest)
		default:
			h.logger.Error("[UploadHandler.Upload] store failed", "filename", header.Filename, "err", err)
			http.Error(w, "Upload failed.", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, toUploadResponse(upload))
}

// List handles GET /uploads?limit=n
func (h *UploadHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	uploads, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrHistoryDisabled) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("[UploadHandler.List] list failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"uploads": toRecordResponses(uploads),
	})
}

// Get handles GET /uploads/{id} by redirecting to the stored object
func (h *UploadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	url, err := h.service.Locate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUploadNotFound):
			http.Error(w, "upload not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrHistoryDisabled):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			h.logger.Error("[UploadHandler.Get] locate failed", "id", id, "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
