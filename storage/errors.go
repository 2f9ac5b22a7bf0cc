package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is for every missing-path Error.
var ErrNotFound = errors.New("not found")

// Kind classifies storage failures.
type Kind int

const (
	// KindIO is any failure other than a missing path.
	KindIO Kind = iota
	// KindNotFound reports a missing path.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	default:
		return "i/o error"
	}
}

// Error describes a failed storage operation.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrNotFound for KindNotFound errors.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// IsNotFound reports whether err describes a missing path.
func IsNotFound(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == KindNotFound
	}
	return errors.Is(err, ErrNotFound)
}

func notFound(op, path string, err error) error {
	return &Error{Op: op, Path: path, Kind: KindNotFound, Err: err}
}

func ioError(op, path string, err error) error {
	return &Error{Op: op, Path: path, Kind: KindIO, Err: err}
}
