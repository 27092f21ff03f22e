package lead

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrDuplicate    = errors.New("lead with this key already exists")
)
