package grocery

import "errors"

var ErrInvalidInput = errors.New("invalid input")
