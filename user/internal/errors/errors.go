package errors

import "errors"

var (
	ErrEmailTaken       = errors.New("email is already registered")
	ErrPasswordMismatch = errors.New("password does not match")
	ErrUserNotFound     = errors.New("user not found")
)
