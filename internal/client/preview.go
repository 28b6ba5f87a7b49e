package client

import (
	"context"

	"github.com/charmbracelet/log"
	previewDomain "github.com/saransh1220/animal-drop/internal/modules/preview/domain"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
)

// PreviewSelector points the preview image at the chosen animal
type PreviewSelector struct {
	image       *Element
	placeholder *Element
	basePath    string
	ext         string
	logger      *log.Logger
}

type PreviewOption func(*PreviewSelector)

// WithImageBase overrides the image directory and extension
func WithImageBase(basePath, ext string) PreviewOption {
	return func(p *PreviewSelector) {
		p.basePath = basePath
		p.ext = ext
	}
}

func WithPreviewLogger(l *log.Logger) PreviewOption {
	return func(p *PreviewSelector) { p.logger = l }
}

func NewPreviewSelector(image, placeholder *Element, opts ...PreviewOption) *PreviewSelector {
	p := &PreviewSelector{
		image:       image,
		placeholder: placeholder,
		basePath:    previewDomain.DefaultBasePath,
		ext:         previewDomain.DefaultExt,
		logger:      logger.Get(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Bind subscribes the selector to change events on each radio
func (p *PreviewSelector) Bind(radios ...*Element) {
	for _, r := range radios {
		r.AddEventListener(EventChange, p.HandleChange)
	}
}

// HandleChange shows the image for the target's value. The value is not
// checked; an unknown animal yields a broken image, which is fine.
func (p *PreviewSelector) HandleChange(_ context.Context, e *Event) {
	if e.Target == nil {
		return
	}
	src := previewDomain.ImagePath(p.basePath, e.Target.Value(), p.ext)
	p.image.SetSrc(src)
	p.image.SetDisplay(DisplayBlock)
	p.placeholder.SetDisplay(DisplayNone)
	p.logger.Debug("preview selected", "src", src)
}
