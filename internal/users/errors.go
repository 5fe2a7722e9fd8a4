package users

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("user already exists")
	ErrNoIdentity   = errors.New("no signed-in identity")
)
