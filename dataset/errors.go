package dataset

import "errors"

var (
	ErrUnknownCity       = errors.New("unknown city")
	ErrReadDataset       = errors.New("error reading dataset")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidStartTime  = errors.New("invalid start time")
	ErrInvalidDuration   = errors.New("invalid trip duration")
	ErrInvalidBirthYear  = errors.New("invalid birth year")
	ErrReadStations      = errors.New("error reading station catalog")
	ErrInvalidCoordinate = errors.New("invalid station coordinate")
)
