package contact

import "errors"

var (
	ErrMissingEmail   = errors.New("missing required email")
	ErrInvalidPayload = errors.New("invalid contact payload")
)
