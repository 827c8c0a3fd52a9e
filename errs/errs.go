// Package errs holds the error taxonomy shared by the containers.
//
// Every failure is reported before any mutation, so a container that returned
// one of these errors is exactly as it was before the call.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrIndex           = errors.New("index out of range")
	ErrEmpty           = errors.New("container is empty")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidNode     = errors.New("invalid node handle")
	ErrStaleIterator   = errors.New("iterator invalidated by modification")
)

// IndexError reports an index outside [0, Len) (or [0, Len] for inserts).
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range, size %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndex
}

func Index(op string, index, size int) error {
	return &IndexError{Op: op, Index: index, Len: size}
}

func Empty(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmpty)
}

func InvalidArgument(op string, format string, v ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, v...), ErrInvalidArgument)
}

func InvalidNode(op string, reason string) error {
	return fmt.Errorf("%s: %s: %w", op, reason, ErrInvalidNode)
}

func StaleIterator(op string) error {
	return fmt.Errorf("%s: %w", op, ErrStaleIterator)
}
