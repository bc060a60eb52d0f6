package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/contact"
)

// maxResponseBytes caps how much of an endpoint reply is read.
const maxResponseBytes = 64 << 10

// HTTPDispatcher posts submissions to the contact endpoint as JSON.
type HTTPDispatcher struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDispatcher validates endpoint and returns a dispatcher using hc.
func NewHTTPDispatcher(endpoint string, hc *http.Client) (*HTTPDispatcher, error) {
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPDispatcher{endpoint: u.String(), client: hc}, nil
}

// Dispatch implements contact.Dispatcher. Fields arrive entity-encoded from
// the pipeline and are decoded back to text, since the endpoint validates
// raw input and sanitizes it again itself.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, s contact.Submission) (string, error) {
	body, err := json.Marshal(unescape(s))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var res contact.Result
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&res); err != nil {
		return "", fmt.Errorf("%w: status %d: %w", ErrUnexpectedResponse, resp.StatusCode, err)
	}
	res.Outcome = contact.OutcomeFromStatus(resp.StatusCode)

	if resp.StatusCode == http.StatusOK && res.Success {
		return res.ID, nil
	}

	if res.Outcome == contact.OutcomeRateLimited {
		if ra, err := parseRetryAfter(resp.Header.Get("Retry-After")); err == nil {
			res.RetryAfter = ra
		}
	}
	if slot := remoteSlotFrom(ctx); slot != nil {
		slot.set(res)
	}
	return "", fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, res.Error)
}

// parseRetryAfter accepts both delay-seconds and HTTP-date forms.
func parseRetryAfter(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second, nil
	}
	at, err := http.ParseTime(v)
	if err != nil {
		return 0, err
	}
	return max(time.Until(at), 0), nil
}

func unescape(s contact.Submission) contact.Submission {
	return contact.Submission{
		Name:        html.UnescapeString(s.Name),
		Email:       s.Email,
		Phone:       html.UnescapeString(s.Phone),
		Company:     html.UnescapeString(s.Company),
		ProjectType: html.UnescapeString(s.ProjectType),
		Budget:      html.UnescapeString(s.Budget),
		Timeline:    html.UnescapeString(s.Timeline),
		Message:     html.UnescapeString(s.Message),
	}
}

// remoteSlot carries the endpoint's Result out of the pipeline, which only
// sees the dispatch error.
type remoteSlot struct {
	mu  sync.Mutex
	res contact.Result
	ok  bool
}

func (s *remoteSlot) set(res contact.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.res, s.ok = res, true
}

func (s *remoteSlot) get() (contact.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.res, s.ok
}

type remoteSlotKey struct{}

func withRemoteSlot(ctx context.Context, s *remoteSlot) context.Context {
	return context.WithValue(ctx, remoteSlotKey{}, s)
}

func remoteSlotFrom(ctx context.Context) *remoteSlot {
	s, _ := ctx.Value(remoteSlotKey{}).(*remoteSlot)
	return s
}
