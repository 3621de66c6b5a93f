package user

import "errors"

var (
	ErrIdentityNotFound = errors.New("identity not found in token claims")
	ErrUnknownRole      = errors.New("unknown role")
	ErrInvalidToken     = errors.New("invalid or expired token")
)
