package cli

import (
	"errors"
	"io/fs"

	"sciencecalc/decay"
	"sciencecalc/lookup"
	"sciencecalc/plot"
)

// Error type constants for classification
const (
	ErrTypeInvalidParameter = "invalid_parameter"
	ErrTypeUnknownKey       = "unknown_key"
	ErrTypeChart            = "chart"
	ErrTypeIO               = "io"
	ErrTypeUnknown          = "unknown"
)

// ClassifyError maps an error onto one of the ErrType constants for
// metrics and logs.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, decay.ErrInvalidParameter):
		return ErrTypeInvalidParameter
	case errors.Is(err, lookup.ErrUnknownKey):
		return ErrTypeUnknownKey
	case errors.Is(err, plot.ErrEmpty), errors.Is(err, plot.ErrNonPositive):
		return ErrTypeChart
	case errors.As(err, &pathErr):
		return ErrTypeIO
	}
	return ErrTypeUnknown
}
