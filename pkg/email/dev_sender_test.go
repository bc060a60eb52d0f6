package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
)

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "emails")
	sender := email.NewDevSender(dir)

	id, err := sender.SendEmail(context.Background(), validMessage())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var htmlFile, textFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".txt":
			textFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, textFile)
	require.NotEmpty(t, jsonFile)
	assert.Contains(t, htmlFile, "new_contact_form_submission_from_jane_doe")

	html, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello</p>", string(html))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, id, meta["id"])
	assert.Equal(t, "owner@example.com", meta["to"])
	assert.Equal(t, "jane@example.com", meta["reply_to"])
	assert.False(t, strings.Contains(string(raw), "<p>Hello</p>"), "bodies are not duplicated in metadata")
}

func TestDevSender_InvalidMessage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	msg := validMessage()
	msg.Subject = ""
	_, err := sender.SendEmail(context.Background(), msg)
	assert.ErrorIs(t, err, email.ErrInvalidParams)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDevSender_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := email.NewDevSender(t.TempDir()).SendEmail(ctx, validMessage())
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.ErrorIs(t, err, context.Canceled)
}
