package domain

import "errors"

var (
	ErrResultNotFound  = errors.New("result not found")
	ErrEmptyBank       = errors.New("question bank has no questions")
	ErrDuplicateID     = errors.New("duplicate question id")
	ErrMissingID       = errors.New("question without id")
	ErrUnsupportedFile = errors.New("unsupported file extension")
)
