package contact

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Outcome classifies a Result for status mapping and logging.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRateLimited
	OutcomeInvalid
	OutcomeDispatchFailed
	OutcomeInternal
	OutcomeMethodNotAllowed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeDispatchFailed:
		return "dispatch_failed"
	case OutcomeMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal"
	}
}

// StatusCode maps the outcome to an HTTP status.
func (o Outcome) StatusCode() int {
	switch o {
	case OutcomeSuccess:
		return http.StatusOK
	case OutcomeRateLimited:
		return http.StatusTooManyRequests
	case OutcomeInvalid:
		return http.StatusBadRequest
	case OutcomeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// OutcomeFromStatus is the inverse of StatusCode for responses read back
// from the endpoint.
func OutcomeFromStatus(code int) Outcome {
	switch code {
	case http.StatusOK:
		return OutcomeSuccess
	case http.StatusTooManyRequests:
		return OutcomeRateLimited
	case http.StatusBadRequest:
		return OutcomeInvalid
	case http.StatusMethodNotAllowed:
		return OutcomeMethodNotAllowed
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return OutcomeDispatchFailed
	default:
		return OutcomeInternal
	}
}

// User-facing messages.
const (
	MessageSuccess          = "Email sent successfully! We'll get back to you within 24-48 hours."
	MessageRateLimited      = "Too many requests. Please wait 15 minutes before trying again."
	MessageInvalid          = "Please check your form data and try again"
	MessageDispatchFailed   = "Failed to send email. Please try again later."
	MessageInternal         = "An unexpected error occurred. Please try again later."
	MessageMethodNotAllowed = "Method not allowed"
)

// Machine-oriented error tags.
const (
	ErrorRateLimited      = "Rate limit exceeded"
	ErrorInvalidBody      = "Invalid request body"
	ErrorDispatchFailed   = "Email service error"
	ErrorInternal         = "Internal server error"
	ErrorMethodNotAllowed = "Method not allowed"
)

// Result is the normalized outcome of one submission.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`
	// Fields maps each failing field to its reason.
	Fields map[string]string `json:"fields,omitempty"`

	Outcome    Outcome       `json:"-"`
	RetryAfter time.Duration `json:"-"`
}

// Succeeded reports a dispatched submission with the provider id.
func Succeeded(id string) Result {
	return Result{Success: true, Message: MessageSuccess, ID: id, Outcome: OutcomeSuccess}
}

// RateLimited reports a rejected admission.
func RateLimited(retryAfter time.Duration) Result {
	return Result{
		Message:    MessageRateLimited,
		Error:      ErrorRateLimited,
		Outcome:    OutcomeRateLimited,
		RetryAfter: retryAfter,
	}
}

// Invalid reports field validation failures. Reasons are joined in field
// order into Error.
func Invalid(errs validator.ValidationErrors) Result {
	return Result{
		Message: MessageInvalid,
		Error:   strings.Join(errs.Messages(), "; "),
		Fields:  errs.Map(),
		Outcome: OutcomeInvalid,
	}
}

// MalformedBody reports a request body that could not be decoded.
func MalformedBody() Result {
	return Result{Message: MessageInvalid, Error: ErrorInvalidBody, Outcome: OutcomeInvalid}
}

// DispatchFailed reports a provider or transport failure.
func DispatchFailed() Result {
	return Result{Message: MessageDispatchFailed, Error: ErrorDispatchFailed, Outcome: OutcomeDispatchFailed}
}

// InternalError reports anything unexpected. Details stay in the logs.
func InternalError() Result {
	return Result{Message: MessageInternal, Error: ErrorInternal, Outcome: OutcomeInternal}
}

// MethodNotAllowed reports a request with a method other than POST or OPTIONS.
func MethodNotAllowed() Result {
	return Result{Message: MessageMethodNotAllowed, Error: ErrorMethodNotAllowed, Outcome: OutcomeMethodNotAllowed}
}

// Render writes the result as JSON with its mapped status code.
func (r Result) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	if r.Outcome == OutcomeRateLimited && r.RetryAfter > 0 {
		h.Set("Retry-After", strconv.Itoa(int(math.Ceil(r.RetryAfter.Seconds()))))
	}
	w.WriteHeader(r.Outcome.StatusCode())
	return json.NewEncoder(w).Encode(r)
}
