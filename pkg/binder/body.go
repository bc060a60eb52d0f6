package binder

import (
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodySize caps request bodies read by the binders (64 KiB).
const DefaultMaxBodySize int64 = 64 << 10

const (
	mediaTypeJSON = "application/json"
	mediaTypeForm = "application/x-www-form-urlencoded"
)

// Func binds an HTTP request into v.
type Func func(r *http.Request, v any) error

// readBody reads at most limit bytes. A longer body is an error rather than
// a silent truncation.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}

// mediaType returns the lowercased media type without parameters, or "" if
// the header is absent.
func mediaType(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mt, nil
}

// Auto picks the JSON or Form binder from the Content-Type header. A missing
// header is treated as JSON.
func Auto(maxBytes int64) Func {
	jsonBinder := JSON(maxBytes)
	formBinder := Form(maxBytes)
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r)
		if err != nil {
			return err
		}
		switch mt {
		case "", mediaTypeJSON:
			return jsonBinder(r, v)
		case mediaTypeForm:
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mt, mediaTypeJSON, mediaTypeForm)
		}
	}
}
