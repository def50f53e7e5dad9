package apperrors

import (
	"errors"
)

var (
	ErrInvalidIdentifier   = errors.New("invalid card identifier")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrUnknownCard         = errors.New("card not registered")
)
