package upload

import (
	"io"
	"testing"

	"github.com/jmoiron/sqlx"
	fileApp "github.com/saransh1220/animal-drop/internal/modules/filestorage/application"
	"github.com/saransh1220/animal-drop/internal/modules/filestorage/infrastructure/local"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModule(t *testing.T) {
	storage, err := local.NewLocalStorage(t.TempDir(), "/static/uploads")
	require.NoError(t, err)
	files := fileApp.NewFileService(storage)

	m := NewModule(nil, files, 0, logger.New(io.Discard))
	assert.NotNil(t, m.Service())
	assert.NotNil(t, m.HTTPHandler())
	assert.Equal(t, int64(5*1024*1024), m.Service().MaxBytes())

	m = NewModule(&sqlx.DB{}, files, 1024, logger.New(io.Discard))
	assert.Equal(t, int64(1024), m.Service().MaxBytes())
}
