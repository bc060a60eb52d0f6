// Package binder decodes HTTP request bodies into Go values with a hard body
// size cap.
//
// JSON and Form each return a Func bound to a maximum body size; Auto picks
// one from the Content-Type header, treating a missing header as JSON:
//
//	bind := binder.Auto(binder.DefaultMaxBodySize)
//
//	var payload map[string]any
//	if err := bind(r, &payload); err != nil {
//	    // malformed body, 400
//	}
//
// Form binds into structs via `form` tags (strings, numbers, bools, pointers
// and slices) or into a map[string]any holding the first value per key.
//
// # Error Handling
//
// Failures wrap one of ErrUnsupportedMediaType, ErrFailedToParseJSON,
// ErrFailedToParseForm, ErrBodyTooLarge or ErrInvalidTarget and can be
// checked with errors.Is.
package binder
