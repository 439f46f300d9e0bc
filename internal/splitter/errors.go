package splitter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is returned when the catalog is missing, malformed or empty.
	ErrConfiguration = errors.New("invalid delivery configuration")
	// ErrUnknownItem is returned when the basket references a product absent from the catalog.
	ErrUnknownItem = errors.New("basket references an unknown product")
	// ErrUncoverable is returned when no combination of delivery types can carry the basket.
	ErrUncoverable = errors.New("basket cannot be covered by the available delivery types")
	// ErrTooManyDeliveryTypes is returned when the delivery type universe exceeds the search limit.
	ErrTooManyDeliveryTypes = errors.New("too many delivery types to search exhaustively")
)

// ConfigurationError describes why a catalog could not be used.
type ConfigurationError struct {
	Source string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := ErrConfiguration.Error()
	if e.Source != "" {
		msg += fmt.Sprintf(" (source=%s)", e.Source)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports every ConfigurationError as ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// UnknownItemError lists the basket products missing from the catalog.
type UnknownItemError struct {
	Items []string
}

func (e *UnknownItemError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", ErrUnknownItem.Error(), strings.Join(e.Items, ", "))
}

func (e *UnknownItemError) Is(target error) bool {
	return target == ErrUnknownItem
}

func configErr(source string, format string, args ...any) error {
	return &ConfigurationError{Source: source, Err: fmt.Errorf(format, args...)}
}
