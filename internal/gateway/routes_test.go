package gateway

import (
	"context"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/saransh1220/animal-drop/internal/client"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage"
	"github.com/saransh1220/animal-drop/internal/modules/page"
	"github.com/saransh1220/animal-drop/internal/modules/preview"
	"github.com/saransh1220/animal-drop/internal/modules/upload"
	"github.com/saransh1220/animal-drop/internal/shared/infrastructure/config"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*httptest.Server
	uploadsDir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := logger.New(io.Discard)

	imgDir := t.TempDir()
	for name, c := range map[string]color.NRGBA{
		"cat.jpg": {R: 200, A: 255},
		"dog.png": {G: 200, A: 255},
	} {
		require.NoError(t, imaging.Save(imaging.New(40, 20, c), filepath.Join(imgDir, name)))
	}
	uploadsDir := t.TempDir()

	files, err := filestorage.NewModule(context.Background(), config.FileStorageConfig{
		LocalPath:    uploadsDir,
		LocalBaseURL: "/static/uploads",
	})
	require.NoError(t, err)

	previews := preview.NewModule(config.PreviewConfig{ImageDir: imgDir, MaxDim: 16, CacheTTL: time.Minute}, nil, log)
	uploads := upload.NewModule(nil, files.Service(), 0, log)
	pages, err := page.NewModule(previews.Service(), 0, log)
	require.NoError(t, err)

	router := SetupRoutes(RouterConfig{
		PageHandler:     pages.HTTPHandler(),
		PreviewHandler:  previews.HTTPHandler(),
		UploadHandler:   uploads.HTTPHandler(),
		AllowedOrigins:  "*",
		LocalUploadsDir: uploadsDir,
		LocalUploadsURL: "/static/uploads",
	})
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return &testApp{Server: srv, uploadsDir: uploadsDir}
}

func (a *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.Client().Get(a.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *testApp) mount(t *testing.T, opts ...client.SubmitterOption) *client.App {
	t.Helper()
	resp := a.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p, err := client.ParsePage(resp.Body)
	require.NoError(t, err)

	opts = append([]client.SubmitterOption{
		client.WithHTTPClient(a.Client()),
		client.WithSubmitterLogger(logger.New(io.Discard)),
	}, opts...)
	return client.Mount(p, a.URL, opts...)
}

func TestSetupRoutes_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp := app.get(t, "/health")
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutes_Metrics(t *testing.T) {
	app := newTestApp(t)
	app.get(t, "/health")

	resp := app.get(t, "/metrics")
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `route="GET /health"`)
}

func TestSetupRoutes_Unknown(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/nope").StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, app.get(t, "/upload").StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, app.get(t, "/uploads").StatusCode)
}

func TestSetupRoutes_PreviewFlow(t *testing.T) {
	app := newTestApp(t)
	page := app.mount(t).Page

	require.Len(t, page.Radios, 2)
	require.NoError(t, page.Choose(context.Background(), "cat"))
	require.Equal(t, "/static/img/cat.jpg", page.Image.Src())

	resp := app.get(t, page.Image.Src())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
	img, err := jpeg.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	require.NoError(t, page.Choose(context.Background(), "dog"))
	assert.Equal(t, http.StatusOK, app.get(t, page.Image.Src()).StatusCode)
	assert.Equal(t, http.StatusNotFound, app.get(t, "/static/img/cow.jpg").StatusCode)
}

func TestSetupRoutes_UploadFlow(t *testing.T) {
	app := newTestApp(t)
	a := app.mount(t)
	name := `notes <1> & "2".txt`
	a.Page.ChooseFile(client.NewFile(name, "text/plain", []byte("hello there")))

	e := a.Page.SubmitForm(context.Background())

	assert.True(t, e.DefaultPrevented())
	assert.Equal(t, "Uploaded successfully.", a.Page.Message.Text())
	assert.False(t, a.Page.ResultsCard.Hidden())
	assert.Equal(t,
		"<tr><td>notes &lt;1&gt; &amp; &quot;2&quot;.txt</td><td>0.00</td><td>text/plain</td></tr>",
		a.Page.ResultsBody.InnerHTML())

	stored, err := filepath.Glob(filepath.Join(app.uploadsDir, "uploads", "*.txt"))
	require.NoError(t, err)
	require.Len(t, stored, 1)

	resp := app.get(t, "/static/uploads/uploads/"+filepath.Base(stored[0]))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello there", string(body))
}

func TestSetupRoutes_UploadTooLargeRejectedByServer(t *testing.T) {
	app := newTestApp(t)
	// lift the page's own limit so the request reaches the server
	a := app.mount(t, client.WithMaxBytes(16<<20))
	a.Page.ChooseFile(client.NewFile("big.bin", "", make([]byte, 5*1024*1024+1)))

	_, err := a.Uploader.Submit(context.Background())

	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Status)
	assert.Equal(t, "File too large: 5.00 MB (max 5 MB).", a.Page.Message.Text())
	assert.True(t, a.Page.ResultsCard.Hidden())
}

func TestSetupRoutes_UploadWithoutFileField(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Client().Post(app.URL+"/upload", "multipart/form-data; boundary=x", strings.NewReader("--x--\r\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file uploaded.", strings.TrimSpace(string(body)))
}
