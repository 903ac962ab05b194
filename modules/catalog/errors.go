package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog operations.
var (
	// ErrNotFound is returned when no product matches the requested id.
	ErrNotFound = errors.New("product not found")

	// ErrInvalidFormat is returned when an import payload is not a JSON
	// array of product records.
	ErrInvalidFormat = errors.New("invalid data format")

	// ErrNoValidProducts is returned when an import batch contains no
	// usable record.
	ErrNoValidProducts = errors.New("no valid products found")
)

// ValidationError reports why a product payload was rejected. The
// individual messages are suitable for direct display.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product: %s", strings.Join(e.Errors, "; "))
}
