package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestWithFile(t *testing.T) {
	t.Parallel()

	t.Run("writes to rotated file and tees", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "formkit.log")
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFile(logger.FileConfig{Path: path, MaxSizeMB: 1}, true),
		)
		log.Info("submission accepted")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "submission accepted")
		assert.Contains(t, buf.String(), "submission accepted")
	})

	t.Run("empty path keeps output", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFile(logger.FileConfig{}, false),
		)
		log.Info("hello")
		assert.Contains(t, buf.String(), "hello")
	})
}
