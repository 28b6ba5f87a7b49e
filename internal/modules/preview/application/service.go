package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/saransh1220/animal-drop/internal/modules/preview/domain"
)

const jpegQuality = 80

var sourceExts = []string{".jpg", ".jpeg", ".png"}

// Cache stores rendered previews. Any error other than a miss is logged and
// treated as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PreviewService renders source images from a directory into bounded JPEGs
type PreviewService struct {
	dir    string
	maxDim int
	ttl    time.Duration
	cache  Cache
	logger *log.Logger
}

// NewPreviewService builds the service; cache may be nil
func NewPreviewService(dir string, maxDim int, ttl time.Duration, cache Cache, logger *log.Logger) *PreviewService {
	return &PreviewService{dir: dir, maxDim: maxDim, ttl: ttl, cache: cache, logger: logger}
}

// Animals lists the names that have a source image, sorted
func (s *PreviewService) Animals() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !isSourceExt(ext) || !domain.ValidName(name) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Render returns the JPEG preview for name
func (s *PreviewService) Render(ctx context.Context, name string) ([]byte, error) {
	if !domain.ValidName(name) {
		return nil, domain.ErrInvalidName
	}

	if s.cache != nil {
		data, err := s.cache.Get(ctx, name)
		switch {
		case err == nil:
			previewCacheTotal.WithLabelValues("hit").Inc()
			return data, nil
		case errors.Is(err, domain.ErrCacheMiss):
			previewCacheTotal.WithLabelValues("miss").Inc()
		default:
			previewCacheTotal.WithLabelValues("error").Inc()
			s.logger.Debug("preview cache unavailable", "name", name, "err", err)
		}
	}

	src, err := s.findSource(name)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	if s.maxDim > 0 {
		img = imaging.Fit(img, s.maxDim, s.maxDim, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	data := buf.Bytes()

	if s.cache != nil {
		if err := s.cache.Set(ctx, name, data, s.ttl); err != nil {
			s.logger.Debug("preview cache write failed", "name", name, "err", err)
		}
	}
	return data, nil
}

func (s *PreviewService) findSource(name string) (string, error) {
	for _, ext := range sourceExts {
		p := filepath.Join(s.dir, name+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", domain.ErrImageNotFound
}

func isSourceExt(ext string) bool {
	for _, e := range sourceExts {
		if e == ext {
			return true
		}
	}
	return false
}
