package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON creates a JSON binder function. Unknown fields are ignored and the
// body must hold exactly one JSON value.
//
// Example:
//
//	var payload map[string]any
//	if err := binder.JSON(binder.DefaultMaxBodySize)(r, &payload); err != nil {
//		// 400
//	}
func JSON(maxBytes int64) Func {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		mt, err := mediaType(r)
		if err != nil {
			return err
		}
		if mt != "" && mt != mediaTypeJSON {
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, mediaTypeJSON)
		}

		body, err := readBody(r, maxBytes)
		if err != nil {
			if errors.Is(err, ErrBodyTooLarge) {
				return err
			}
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		return nil
	}
}
