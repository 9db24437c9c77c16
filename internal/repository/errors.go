package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrInvalid  = errors.New("invalid input")
)
