package resolver

import "errors"

var (
	ErrInvalidCity       = errors.New("invalid city")
	ErrInvalidFilterMode = errors.New("invalid filter mode")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrInvalidDay        = errors.New("invalid day")
	ErrInvalidFilter     = errors.New("invalid filter")
)
