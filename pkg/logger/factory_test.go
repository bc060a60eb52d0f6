package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("contact submission sent")

		entry := decodeLine(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "contact submission sent", entry["msg"])
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithTextFormatter()).Warn("rate limited")

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), `msg="rate limited"`)
	})

	t.Run("last formatter wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter()).Info("x")
		assert.Equal(t, "x", decodeLine(t, buf)["msg"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestNew_LevelAndAttrs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelWarn),
		logger.WithAttr(slog.String("service", "formkit")),
	)

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Error("dispatch failed")
	entry := decodeLine(t, buf)
	assert.Equal(t, "formkit", entry["service"])
}

func TestNew_ContextExtractors(t *testing.T) {
	t.Parallel()

	type tenantKey struct{}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor(), nil),
		logger.WithContextValue("site", tenantKey{}),
	)

	ctx := requestid.WithContext(context.Background(), "req-1")
	ctx = context.WithValue(ctx, tenantKey{}, "agency")

	log.With(logger.Component("contact")).WithGroup("submission").InfoContext(ctx, "accepted", slog.String("outcome", "success"))

	entry := decodeLine(t, buf)
	assert.Equal(t, "contact", entry["component"])
	group, ok := entry["submission"].(map[string]any)
	require.True(t, ok, buf.String())
	assert.Equal(t, "success", group["outcome"])
	assert.Equal(t, "req-1", group["request_id"])
	assert.Equal(t, "agency", group["site"])
}

func TestNew_ContextWithoutValues(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))
	log.InfoContext(context.Background(), "no request")

	assert.NotContains(t, decodeLine(t, buf), "request_id")
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		debug   bool
		json    bool
		wantEnv string
	}{
		{env: "development", debug: true, wantEnv: "development"},
		{env: "dev", debug: true, wantEnv: "development"},
		{env: "", debug: true, wantEnv: "development"},
		{env: "staging", json: true, wantEnv: "staging"},
		{env: "stage", json: true, wantEnv: "staging"},
		{env: "production", json: true, wantEnv: "production"},
		{env: "PROD", json: true, wantEnv: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, "formkit"))

			log.Debug("debug line")
			assert.Equal(t, tt.debug, buf.Len() > 0)

			buf.Reset()
			log.Info("info line")
			out := buf.String()
			if tt.json {
				entry := decodeLine(t, buf)
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "formkit", entry["service"])
			} else {
				assert.True(t, strings.Contains(out, "env="+tt.wantEnv), out)
				assert.Contains(t, out, "service=formkit")
			}
		})
	}
}

func TestWithEnvironment_EmptyServiceKeepsDefaults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger.New(logger.WithOutput(buf), logger.WithProduction("")).Info("x")

	entry := decodeLine(t, buf)
	assert.NotContains(t, entry, "service")
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("via default")

	assert.Equal(t, "via default", decodeLine(t, buf)["msg"])
}
