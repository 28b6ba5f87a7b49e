package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	previewDomain "github.com/saransh1220/animal-drop/internal/modules/preview/domain"
	"github.com/saransh1220/animal-drop/internal/modules/page/templates"
	uploadDomain "github.com/saransh1220/animal-drop/internal/modules/upload/domain"
)

// AnimalLister provides the radio options
type AnimalLister interface {
	Animals() ([]string, error)
}

type animalOption struct {
	Name    string
	Checked bool
}

type indexData struct {
	Group      string
	Animals    []animalOption
	ImageSrc   string
	UploadPath string
	MaxMB      float64
}

type PageHandler struct {
	animals  AnimalLister
	maxBytes int64
	tmpl     *template.Template
	logger   *log.Logger
}

func NewPageHandler(animals AnimalLister, maxBytes int64, logger *log.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templates.FS, "index.html")
	if err != nil {
		return nil, err
	}
	if maxBytes <= 0 {
		maxBytes = uploadDomain.MaxUploadBytes
	}
	return &PageHandler{animals: animals, maxBytes: maxBytes, tmpl: tmpl, logger: logger}, nil
}

// Index handles GET /. ?animal=<v> renders the page with <v> selected, in the
// same state the preview selector leaves it after a change event.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	names, err := h.animals.Animals()
	if err != nil {
		h.logger.Warn("[PageHandler.Index] no animals available", "err", err)
	}

	selected := r.URL.Query().Get(previewDomain.GroupName)
	data := indexData{
		Group:      previewDomain.GroupName,
		UploadPath: "/upload",
		MaxMB:      float64(h.maxBytes) / uploadDomain.MiB,
	}
	for _, name := range names {
		data.Animals = append(data.Animals, animalOption{Name: name, Checked: name == selected})
	}
	if selected != "" {
		data.ImageSrc = previewDomain.ImagePath(previewDomain.DefaultBasePath, selected, previewDomain.DefaultExt)
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		h.logger.Error("[PageHandler.Index] render failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
