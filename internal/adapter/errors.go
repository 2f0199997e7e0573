package adapter

import "errors"

// Sentinels for bundler runtime responses, see mapHTTPError.
var (
	ErrBadRequest            = errors.New("runtime rejected the request")
	ErrUnauthorized          = errors.New("runtime unauthorized")
	ErrForbidden             = errors.New("runtime forbidden")
	ErrNotFound              = errors.New("runtime endpoint not found")
	ErrConflict              = errors.New("runtime is busy with another configuration")
	ErrConfigurationRejected = errors.New("runtime rejected the composed configuration")
	ErrInternalServerError   = errors.New("runtime internal error")
	ErrBadGateway            = errors.New("runtime bad gateway")
	ErrRuntimeUnavailable    = errors.New("runtime unavailable")

	ErrEmptyComposed = errors.New("nothing to deliver: composed configuration is empty")
)
