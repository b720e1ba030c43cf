package series

import "errors"

// Model errors.
var (
	ErrEmptySeries      = errors.New("series: time series must not be empty")
	ErrLengthMismatch   = errors.New("series: time and value lengths differ")
	ErrNonMonotonic     = errors.New("series: time values must be strictly increasing")
	ErrNonUniform       = errors.New("series: time grid is not uniformly spaced")
	ErrTooShort         = errors.New("series: at least two samples are required")
	ErrInvalidMode      = errors.New("series: invalid (l,m) mode")
	ErrDuplicateMode    = errors.New("series: mode already present in bundle")
	ErrModeNotFound     = errors.New("series: mode not present in bundle")
	ErrInvalidTolerance = errors.New("series: tolerance must be >= 0")
)
