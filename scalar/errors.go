package scalar

import (
	"errors"
	"fmt"
)

// ErrConversion is returned (wrapped) by every failed scalar conversion
var ErrConversion = errors.New("conversion failed")

func conversionError(value interface{}, target string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: unable to convert %v (%T) to %s: %w", ErrConversion, value, value, target, cause)
	}
	return fmt.Errorf("%w: unable to convert %v (%T) to %s", ErrConversion, value, value, target)
}
