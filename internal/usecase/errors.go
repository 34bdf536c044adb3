package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrJobNotFound      = errors.New("job not found")
)
