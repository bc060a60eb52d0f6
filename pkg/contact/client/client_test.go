package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/contact"
	"github.com/dmitrymomot/formkit/pkg/contact/client"
	"github.com/dmitrymomot/formkit/pkg/ratelimit"
)

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ProjectType: "Website",
		Budget:      "$5k",
		Timeline:    "1 month",
		Message:     "Please build me a ten-page marketing site for my shop.",
	}
}

// endpoint is a real contact endpoint recording what it dispatched.
type endpoint struct {
	*httptest.Server
	hits atomic.Int32
	mu   sync.Mutex
	sent []contact.Submission
}

func newEndpoint(t *testing.T, limit int, dispatchErr error) *endpoint {
	t.Helper()

	e := &endpoint{}
	fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), limit, 15*time.Minute)
	require.NoError(t, err)

	p, err := contact.NewPipeline(fw, contact.DispatcherFunc(func(_ context.Context, s contact.Submission) (string, error) {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.sent = append(e.sent, s)
		return "srv-1", dispatchErr
	}))
	require.NoError(t, err)

	router := contact.NewRouter(contact.RouterOptions{
		Handler:       contact.NewHandler(p),
		Path:          "/api/send-email",
		AllowedOrigin: "https://example.com",
	})
	e.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.hits.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(e.Close)
	return e
}

func (e *endpoint) url() string { return e.URL + "/api/send-email" }

func newClient(t *testing.T, endpoint string, opts ...client.Option) *client.Client {
	t.Helper()
	c, err := client.New(endpoint, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	for _, endpoint := range []string{"", "/api/send-email", "ftp://example.com/x", "http://"} {
		_, err := client.New(endpoint)
		assert.ErrorIs(t, err, client.ErrInvalidEndpoint, endpoint)
	}
}

func TestClient_Submit_Success(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, 3, nil)
	c := newClient(t, e.url())

	s := validSubmission()
	s.Name = "Seán O'Brien"
	s.Company = "Smith & Sons"

	res := c.Submit(context.Background(), s)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "srv-1", res.ID)
	assert.Equal(t, contact.OutcomeSuccess, res.Outcome)

	e.mu.Lock()
	defer e.mu.Unlock()
	require.Len(t, e.sent, 1)
	assert.Equal(t, "Seán O&#x27;Brien", e.sent[0].Name)
	assert.Equal(t, "Smith &amp; Sons", e.sent[0].Company)
}

func TestClient_Submit_LocalValidationSkipsNetwork(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, 3, nil)
	c := newClient(t, e.url())

	s := validSubmission()
	s.Message = "<script>alert(1)</script> buy now"

	res := c.Submit(context.Background(), s)
	assert.Equal(t, contact.OutcomeInvalid, res.Outcome)
	assert.Contains(t, res.Fields, "message")
	assert.Zero(t, e.hits.Load())
}

func TestClient_Submit_LocalRateLimitByEmail(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, 100, nil)
	c := newClient(t, e.url())

	ctx := context.Background()
	emails := []string{"jane@example.com", "JANE@example.com", " Jane@Example.com "}
	for _, addr := range emails {
		s := validSubmission()
		s.Email = addr
		assert.True(t, c.Submit(ctx, s).Success, addr)
	}

	res := c.Submit(ctx, validSubmission())
	assert.Equal(t, contact.OutcomeRateLimited, res.Outcome)
	assert.Equal(t, contact.ErrorRateLimited, res.Error)
	assert.EqualValues(t, 3, e.hits.Load())

	other := validSubmission()
	other.Email = "bob@example.com"
	assert.True(t, c.Submit(ctx, other).Success)
}

func TestClient_Submit_RemoteRateLimit(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, 1, nil)
	c := newClient(t, e.url())

	ctx := context.Background()
	require.True(t, c.Submit(ctx, validSubmission()).Success)

	res := c.Submit(ctx, validSubmission())
	assert.False(t, res.Success)
	assert.Equal(t, contact.OutcomeRateLimited, res.Outcome)
	assert.Equal(t, contact.ErrorRateLimited, res.Error)
	assert.Positive(t, res.RetryAfter)
}

func TestClient_Submit_RemoteDispatchFailure(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, 3, errors.New("provider down"))
	c := newClient(t, e.url())

	res := c.Submit(context.Background(), validSubmission())
	assert.False(t, res.Success)
	assert.Equal(t, contact.ErrorDispatchFailed, res.Error)
	assert.Equal(t, http.StatusInternalServerError, res.Outcome.StatusCode())
}

func TestClient_Submit_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/api/send-email"
	srv.Close()

	c := newClient(t, endpoint, client.WithTimeout(2*time.Second))
	res := c.Submit(context.Background(), validSubmission())

	assert.Equal(t, contact.OutcomeDispatchFailed, res.Outcome)
	assert.Equal(t, contact.ErrorDispatchFailed, res.Error)
}

func TestClient_Submit_NonJSONResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL)
	res := c.Submit(context.Background(), validSubmission())

	assert.Equal(t, contact.OutcomeDispatchFailed, res.Outcome)
}

func TestClient_Submit_CustomLimiter(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, 3, nil)
	fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
	require.NoError(t, err)
	c := newClient(t, e.url(), client.WithLimiter(fw))

	ctx := context.Background()
	assert.True(t, c.Submit(ctx, validSubmission()).Success)
	assert.Equal(t, contact.OutcomeRateLimited, c.Submit(ctx, validSubmission()).Outcome)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane@example.com", client.Identity("  Jane@Example.COM "))
	assert.Equal(t, "unknown", client.Identity(""))
	assert.Equal(t, "unknown", client.Identity(" \x00 "))
}
