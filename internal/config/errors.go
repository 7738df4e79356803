package config

import "errors"

var (
	ErrInvalidBackend  = errors.New("invalid advisor backend")
	ErrMissingAPIKey   = errors.New("genai backend requires an api key")
	ErrInvalidLogLevel = errors.New("invalid log level")
)
