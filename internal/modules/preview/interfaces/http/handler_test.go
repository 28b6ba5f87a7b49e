package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saransh1220/animal-drop/internal/modules/preview/domain"
	previewHTTP "github.com/saransh1220/animal-drop/internal/modules/preview/interfaces/http"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
	"github.com/stretchr/testify/assert"
)

type stubRenderer map[string]error

func (s stubRenderer) Render(_ context.Context, name string) ([]byte, error) {
	if err, ok := s[name]; ok {
		return nil, err
	}
	return []byte("jpeg:" + name), nil
}

func serve(h *previewHTTP.PreviewHandler, file string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/static/img/"+file, nil)
	req.SetPathValue("file", file)
	w := httptest.NewRecorder()
	h.Image(w, req)
	return w
}

func TestPreviewHandler_Image(t *testing.T) {
	h := previewHTTP.NewPreviewHandler(stubRenderer{
		"unicorn": domain.ErrImageNotFound,
		"broken":  errors.New("decode failed"),
	}, logger.New(io.Discard))

	w := serve(h, "cat.jpg")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg:cat", w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(h, "cat.png").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, "Cat.jpg").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, "unicorn.jpg").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(h, "broken.jpg").Code)
}
