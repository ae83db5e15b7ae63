package errors

import (
	"errors"
)

var (
	ErrEmptyAuth    = errors.New("missing authorization")
	ErrForbidden    = errors.New("insufficient role")
	ErrTokenInvalid = errors.New("invalid token")
)
