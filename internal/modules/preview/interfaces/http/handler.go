package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/saransh1220/animal-drop/internal/modules/preview/domain"
)

// PreviewService renders preview images
type PreviewService interface {
	Render(ctx context.Context, name string) ([]byte, error)
}

type PreviewHandler struct {
	service PreviewService
	logger  *log.Logger
}

func NewPreviewHandler(service PreviewService, logger *log.Logger) *PreviewHandler {
	return &PreviewHandler{service: service, logger: logger}
}

// Image handles GET /static/img/{file} for <animal>.jpg
func (h *PreviewHandler) Image(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), "."+domain.DefaultExt)
	if !ok || !domain.ValidName(name) {
		http.NotFound(w, r)
		return
	}

	data, err := h.service.Render(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) || errors.Is(err, domain.ErrInvalidName) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("[PreviewHandler.Image] render failed", "name", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=600")
	_, _ = w.Write(data)
}
