package repository

import "errors"

var ErrInvalidInput = errors.New("invalid input")
