package adapter

import "errors"

var (
	ErrBadRequest            = errors.New("bad request")
	ErrNotFound              = errors.New("note not found")
	ErrGenerationUnavailable = errors.New("generation service unavailable")
	ErrInternalServerError   = errors.New("internal server error")

	// ErrEmptyGenerationResponse is returned when the generation
	// service answers 2xx but carries no usable text.
	ErrEmptyGenerationResponse = errors.New("empty generation response")
)
