package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/binder"
)

func newRequest(contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		expected    map[string]any
		err         error
	}{
		{
			name:        "object",
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"Jane","age":3}`,
			expected:    map[string]any{"name": "Jane", "age": float64(3)},
		},
		{
			name:     "missing content type is accepted",
			body:     `{"name":"Jane"}`,
			expected: map[string]any{"name": "Jane"},
		},
		{
			name:        "malformed",
			contentType: "application/json",
			body:        `{"name":`,
			err:         binder.ErrFailedToParseJSON,
		},
		{
			name:        "empty",
			contentType: "application/json",
			body:        "  ",
			err:         binder.ErrFailedToParseJSON,
		},
		{
			name:        "trailing data",
			contentType: "application/json",
			body:        `{"a":1}{"b":2}`,
			err:         binder.ErrFailedToParseJSON,
		},
		{
			name:        "wrong media type",
			contentType: "text/plain",
			body:        `{}`,
			err:         binder.ErrUnsupportedMediaType,
		},
		{
			name:        "too large",
			contentType: "application/json",
			body:        `{"m":"` + strings.Repeat("x", 200) + `"}`,
			err:         binder.ErrBodyTooLarge,
		},
	}

	bind := binder.JSON(128)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got map[string]any
			err := bind(newRequest(tt.contentType, tt.body), &got)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	type contactRequest struct {
		Name     string   `form:"name"`
		Email    string   `form:"email"`
		Budget   *string  `form:"budget"`
		Tags     []string `form:"tags"`
		Consent  bool     `form:"consent"`
		Internal string   `form:"-"`
	}

	t.Run("struct target", func(t *testing.T) {
		t.Parallel()
		req := newRequest("application/x-www-form-urlencoded",
			"name=Jane+Doe&email=jane%40example.com&budget=5k&tags=a,b&consent=on&Internal=x")

		var got contactRequest
		require.NoError(t, binder.Form(0)(req, &got))
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "jane@example.com", got.Email)
		require.NotNil(t, got.Budget)
		assert.Equal(t, "5k", *got.Budget)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		assert.True(t, got.Consent)
		assert.Empty(t, got.Internal)
	})

	t.Run("map target keeps first value", func(t *testing.T) {
		t.Parallel()
		req := newRequest("application/x-www-form-urlencoded", "name=Jane&name=John&message=hi")

		var got map[string]any
		require.NoError(t, binder.Form(0)(req, &got))
		assert.Equal(t, map[string]any{"name": "Jane", "message": "hi"}, got)
	})

	t.Run("bad encoding", func(t *testing.T) {
		t.Parallel()
		var got map[string]any
		err := binder.Form(0)(newRequest("application/x-www-form-urlencoded", "name=%zz"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("bad field value", func(t *testing.T) {
		t.Parallel()
		var got struct {
			Budget int `form:"budget"`
		}
		err := binder.Form(0)(newRequest("application/x-www-form-urlencoded", "budget=lots"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		var got string
		err := binder.Form(0)(newRequest("application/x-www-form-urlencoded", "a=b"), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})
}

func TestAuto(t *testing.T) {
	t.Parallel()

	bind := binder.Auto(binder.DefaultMaxBodySize)

	var fromJSON map[string]any
	require.NoError(t, bind(newRequest("application/json", `{"name":"Jane"}`), &fromJSON))
	assert.Equal(t, "Jane", fromJSON["name"])

	var fromForm map[string]any
	require.NoError(t, bind(newRequest("application/x-www-form-urlencoded", "name=Jane"), &fromForm))
	assert.Equal(t, "Jane", fromForm["name"])

	var other map[string]any
	assert.ErrorIs(t, bind(newRequest("multipart/form-data; boundary=x", "--x--"), &other), binder.ErrUnsupportedMediaType)
	assert.ErrorIs(t, bind(newRequest("not a media type;;", ""), &other), binder.ErrUnsupportedMediaType)
}
