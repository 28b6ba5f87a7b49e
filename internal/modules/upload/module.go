package upload

import (
	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	fileApp "github.com/saransh1220/animal-drop/internal/modules/filestorage/application"
	"github.com/saransh1220/animal-drop/internal/modules/upload/application"
	"github.com/saransh1220/animal-drop/internal/modules/upload/domain"
	persistence "github.com/saransh1220/animal-drop/internal/modules/upload/infrastructure/persistence/postgres"
	uploadHttp "github.com/saransh1220/animal-drop/internal/modules/upload/interfaces/http"
)

// Module represents the Upload module
type Module struct {
	service *application.UploadService
	handler *uploadHttp.UploadHandler
}

// NewModule wires the upload endpoint. db may be nil when no database is
// configured; uploads are then stored without a history.
func NewModule(db *sqlx.DB, fileService *fileApp.FileService, maxBytes int64, logger *log.Logger) *Module {
	var repo domain.Repository
	if db != nil {
		repo = persistence.NewUploadRepository(db)
	}

	service := application.NewUploadService(fileService, repo, maxBytes, logger)
	handler := uploadHttp.NewUploadHandler(service, logger)

	return &Module{
		service: service,
		handler: handler,
	}
}

// Service returns the upload service
func (m *Module) Service() *application.UploadService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *uploadHttp.UploadHandler {
	return m.handler
}
