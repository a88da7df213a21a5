package gate

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid gate configuration")
	ErrMissingStore  = errors.New("missing secret store")
)
