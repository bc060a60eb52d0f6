package binder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
)

// Form creates a binder for application/x-www-form-urlencoded bodies.
//
// The target is either a pointer to a struct, bound through `form` tags
// (untagged fields use their lowercased name, `form:"-"` skips), or a pointer
// to map[string]any, which receives the first value of every key.
//
//	type ContactRequest struct {
//		Name    string `form:"name"`
//		Email   string `form:"email"`
//		Message string `form:"message"`
//	}
func Form(maxBytes int64) Func {
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r)
		if err != nil {
			return err
		}
		if mt != mediaTypeForm {
			return fmt.Errorf("%w: got %q, expected %s", ErrUnsupportedMediaType, mt, mediaTypeForm)
		}

		body, err := readBody(r, maxBytes)
		if err != nil {
			if errors.Is(err, ErrBodyTooLarge) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		values, err := url.ParseQuery(string(body))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		if m, ok := v.(*map[string]any); ok {
			if m == nil {
				return ErrInvalidTarget
			}
			if *m == nil {
				*m = make(map[string]any, len(values))
			}
			for key, vals := range values {
				if len(vals) > 0 {
					(*m)[key] = vals[0]
				}
			}
			return nil
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return ErrInvalidTarget
		}
		return decodeValues(v, "form", values)
	}
}
