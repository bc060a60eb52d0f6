package client

import "errors"

var (
	ErrInvalidEndpoint    = errors.New("client: endpoint must be an absolute http(s) url")
	ErrRequest            = errors.New("client: request failed")
	ErrUnexpectedResponse = errors.New("client: unexpected response")
	ErrRejected           = errors.New("client: submission rejected by endpoint")
)
