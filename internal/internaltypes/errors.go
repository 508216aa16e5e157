package internaltypes

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrRemoteUnavailable = errors.New("booking service unavailable")
)
