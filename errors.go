package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals invalid call parameters. Index, empty-input and
	// capacity errors wrap it.
	ErrInvalidArgument = errors.New("segtree: invalid argument")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrUnsupported signals an operation the tree was not built for, e.g. a
	// range update on a tree without an updater.
	ErrUnsupported = errors.New("segtree: unsupported operation")

	// ErrIndexOutOfBounds signals an index or range outside [0, Len()).
	ErrIndexOutOfBounds = fmt.Errorf("%w: index out of bounds", ErrInvalidArgument)
	// ErrEmptyInput signals a build from zero elements.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalidArgument)
	// ErrCapacityOverflow signals an element count whose padded capacity does
	// not fit the index type.
	ErrCapacityOverflow = fmt.Errorf("%w: capacity overflow", ErrInvalidArgument)
)

func errIndex(index, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, n)
}
