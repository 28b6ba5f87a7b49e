package page

import (
	"github.com/charmbracelet/log"
	pageHttp "github.com/saransh1220/animal-drop/internal/modules/page/interfaces/http"
)

// Module serves the index page
type Module struct {
	handler *pageHttp.PageHandler
}

// NewModule parses the embedded templates
func NewModule(animals pageHttp.AnimalLister, maxBytes int64, logger *log.Logger) (*Module, error) {
	handler, err := pageHttp.NewPageHandler(animals, maxBytes, logger)
	if err != nil {
		return nil, err
	}
	return &Module{handler: handler}, nil
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *pageHttp.PageHandler {
	return m.handler
}
