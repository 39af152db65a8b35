package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Shape errors
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrLengthMismatch    = errors.New("length mismatch")
	ErrInsufficientData  = errors.New("insufficient data for analysis")

	// Enumerated parameter errors
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidFunction = errors.New("invalid function")
	ErrInvalidArgument = errors.New("invalid argument")

	// Survey errors
	ErrInvalidKeyDepth   = errors.New("invalid key depth")
	ErrStationOutOfRange = errors.New("station out of range")

	// Conversion errors
	ErrConversion = errors.New("conversion error")
)

// Error constructors with context
func NewLengthMismatchError(what string, a, b int) error {
	return fmt.Errorf("%w: %s have %d and %d elements", ErrLengthMismatch, what, a, b)
}

func NewDimensionMismatchError(a, b int) error {
	return fmt.Errorf("%w: x has %d points, y has %d", ErrDimensionMismatch, a, b)
}

func NewInsufficientDataError(need, got int) error {
	return fmt.Errorf("%w: need at least %d points, got %d", ErrInsufficientData, need, got)
}

func NewKeyDepthError(keyDepth, maxDepth float64) error {
	return fmt.Errorf("%w: start point %gm must be less than the max depth %gm", ErrInvalidKeyDepth, keyDepth, maxDepth)
}

func NewStationError(station, size int) error {
	return fmt.Errorf("%w: station index %d, zone has %d stations", ErrStationOutOfRange, station, size)
}

func NewConversionError(value string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: could not convert %q to float: %v", ErrConversion, value, err)
	}
	return fmt.Errorf("%w: could not convert %q to float", ErrConversion, value)
}

// Error checking helpers
func IsShapeError(err error) bool {
	return errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrInsufficientData)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrInvalidFunction) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidKeyDepth) ||
		errors.Is(err, ErrStationOutOfRange) ||
		errors.Is(err, ErrConversion)
}
