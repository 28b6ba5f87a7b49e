package gateway

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/animal-drop/internal/gateway/middleware"
	pageHttp "github.com/saransh1220/animal-drop/internal/modules/page/interfaces/http"
	previewHttp "github.com/saransh1220/animal-drop/internal/modules/preview/interfaces/http"
	uploadHttp "github.com/saransh1220/animal-drop/internal/modules/upload/interfaces/http"
)

// RouterConfig holds all the handlers and middleware settings needed for routing
type RouterConfig struct {
	PageHandler    *pageHttp.PageHandler
	PreviewHandler *previewHttp.PreviewHandler
	UploadHandler  *uploadHttp.UploadHandler
	AllowedOrigins string

	// Set when uploads are kept on local disk; files are then served
	// from LocalUploadsURL.
	LocalUploadsDir string
	LocalUploadsURL string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *Router {
	r := NewRouter()

	// Health Check
	r.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	r.Handle("GET /metrics", promhttp.Handler())

	// Page
	r.HandleFunc("GET /{$}", config.PageHandler.Index)

	// Preview images
	r.HandleFunc("GET /static/img/{file}", config.PreviewHandler.Image)

	// Uploads
	r.HandleFunc("POST /upload", config.UploadHandler.Upload)
	r.HandleFunc("GET /uploads", config.UploadHandler.List)
	r.HandleFunc("GET /uploads/{id}", config.UploadHandler.Get)

	if config.LocalUploadsDir != "" && config.LocalUploadsURL != "" {
		prefix := "/" + strings.Trim(config.LocalUploadsURL, "/")
		r.Handle("GET "+prefix+"/", http.StripPrefix(prefix, http.FileServer(http.Dir(config.LocalUploadsDir))))
	}

	r.Use(func(next http.Handler) http.Handler {
		return middleware.CORSMiddleware(next, config.AllowedOrigins)
	})
	r.Use(middleware.PrometheusMiddleware)

	return r
}
