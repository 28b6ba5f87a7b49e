package preview

import (
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/animal-drop/internal/modules/preview/application"
	"github.com/saransh1220/animal-drop/internal/modules/preview/infrastructure/cache"
	previewHttp "github.com/saransh1220/animal-drop/internal/modules/preview/interfaces/http"
	"github.com/saransh1220/animal-drop/internal/shared/infrastructure/config"
)

// Module represents the Preview module
type Module struct {
	service *application.PreviewService
	handler *previewHttp.PreviewHandler
}

// NewModule wires the preview image service; redisClient may be nil
func NewModule(cfg config.PreviewConfig, redisClient *redis.Client, logger *log.Logger) *Module {
	var c application.Cache
	if redisClient != nil {
		c = cache.NewRedisCache(redisClient, "preview:")
	}

	service := application.NewPreviewService(cfg.ImageDir, cfg.MaxDim, cfg.CacheTTL, c, logger)
	return &Module{
		service: service,
		handler: previewHttp.NewPreviewHandler(service, logger),
	}
}

// Service returns the preview service
func (m *Module) Service() *application.PreviewService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *previewHttp.PreviewHandler {
	return m.handler
}
