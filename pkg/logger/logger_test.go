package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesLogDirectory(t *testing.T) {
	// Каталог логов из конфигурации может не существовать при первом запуске
	file := filepath.Join(t.TempDir(), "logs", "agenda-service.log")

	l, err := New(file, "info")
	require.NoError(t, err)
	defer l.Close()

	l.Info("startup")

	_, err = os.Stat(file)
	assert.NoError(t, err)
}

func TestNew_Stdout(t *testing.T) {
	l, err := New("stdout", "debug")
	require.NoError(t, err)
	defer l.Close()

	assert.Nil(t, l.file)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLevel("debug"))
	assert.Equal(t, LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, LevelError, parseLevel("error"))
	assert.Equal(t, LevelInfo, parseLevel("unknown"))
}
