package service

import "errors"

var (
	// ErrGenerationFailed indicates the text-generation service could
	// not produce a result. The note is left untouched.
	ErrGenerationFailed = errors.New("text generation failed")
)
