package errors

import "errors"

var ErrEmptyFilteredSet = errors.New("there are no trips that match the filters")
