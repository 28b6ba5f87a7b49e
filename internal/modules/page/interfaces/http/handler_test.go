package http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	pageHTTP "github.com/saransh1220/animal-drop/internal/modules/page/interfaces/http"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnimals struct {
	names []string
	err   error
}

func (s stubAnimals) Animals() ([]string, error) { return s.names, s.err }

func render(t *testing.T, h *pageHTTP.PageHandler, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest(http.MethodGet, target, nil))
	if w.Code != http.StatusOK {
		return w, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestPageHandler_Index_NoSelection(t *testing.T) {
	h, err := pageHTTP.NewPageHandler(stubAnimals{names: []string{"cat", "dog"}}, 0, logger.New(io.Discard))
	require.NoError(t, err)

	w, doc := render(t, h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	radios := doc.Find(`input[name="animal"]`)
	assert.Equal(t, 2, radios.Length())
	assert.Equal(t, 0, doc.Find(`input[name="animal"][checked]`).Length())

	img := doc.Find("#animal-img")
	_, hasSrc := img.Attr("src")
	assert.False(t, hasSrc)
	style, _ := img.Attr("style")
	assert.Equal(t, "display:none", style)

	_, hidden := doc.Find("#uploadResults").Attr("hidden")
	assert.True(t, hidden)
	action, _ := doc.Find("#uploadForm").Attr("action")
	assert.Equal(t, "/upload", action)
	enctype, _ := doc.Find("#uploadForm").Attr("enctype")
	assert.Equal(t, "multipart/form-data", enctype)
	assert.Equal(t, "file", doc.Find("#fileInput").AttrOr("name", ""))
	assert.Contains(t, doc.Find(".hint").Text(), "Max 5 MB.")
}

func TestPageHandler_Index_WithSelection(t *testing.T) {
	h, err := pageHTTP.NewPageHandler(stubAnimals{names: []string{"cat", "dog"}}, 0, logger.New(io.Discard))
	require.NoError(t, err)

	_, doc := render(t, h, "/?animal=dog")

	checked := doc.Find(`input[name="animal"][checked]`)
	require.Equal(t, 1, checked.Length())
	assert.Equal(t, "dog", checked.AttrOr("value", ""))

	img := doc.Find("#animal-img")
	assert.Equal(t, "/static/img/dog.jpg", img.AttrOr("src", ""))
	assert.Equal(t, "display:block", img.AttrOr("style", ""))
	assert.Equal(t, "display:none", doc.Find("#preview .placeholder").AttrOr("style", ""))
}

func TestPageHandler_Index_UnknownSelectionStillRendersPath(t *testing.T) {
	h, err := pageHTTP.NewPageHandler(stubAnimals{names: []string{"cat"}}, 0, logger.New(io.Discard))
	require.NoError(t, err)

	_, doc := render(t, h, "/?animal=unicorn")
	assert.Equal(t, "/static/img/unicorn.jpg", doc.Find("#animal-img").AttrOr("src", ""))
	assert.Equal(t, 0, doc.Find(`input[checked]`).Length())
}

func TestPageHandler_Index_ListerErrorAndNotFound(t *testing.T) {
	h, err := pageHTTP.NewPageHandler(stubAnimals{err: errors.New("no dir")}, 0, logger.New(io.Discard))
	require.NoError(t, err)

	w, doc := render(t, h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, doc.Find(`input[name="animal"]`).Length())

	w, _ = render(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
