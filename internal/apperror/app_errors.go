package apperror

import "errors"

var (
	ErrConfiguration = errors.New("invalid configuration")
	ErrValidation    = errors.New("invalid input")
	ErrOutOfRange    = errors.New("coordinates out of range")
	ErrLookup        = errors.New("unknown symbol")

	ErrUnknownEngine   = errors.New("unknown engine")
	ErrOutcomeNotFound = errors.New("outcome not found")
)

const (
	KindConfiguration = "configuration"
	KindValidation    = "validation"
	KindRange         = "range"
	KindLookup        = "lookup"
	KindInternal      = "internal"
)

// Kind - maps an error to the machine-readable kind reported to clients.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrUnknownEngine):
		return KindConfiguration
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrOutOfRange):
		return KindRange
	case errors.Is(err, ErrLookup):
		return KindLookup
	default:
		return KindInternal
	}
}

// IsClientError - reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	switch Kind(err) {
	case KindConfiguration, KindValidation, KindRange:
		return true
	default:
		return false
	}
}
