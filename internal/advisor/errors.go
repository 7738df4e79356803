package advisor

import "errors"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrEmptyReply   = errors.New("advisor returned an empty reply")
	ErrNoAPIKey     = errors.New("GenAI API key is required")
)
