package api

import (
	"errors"
	"fmt"
)

// ErrBadRequest marks request validation failures.
var ErrBadRequest = errors.New("bad request")

// OpError records the handler operation that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// NewKind returns an error of the given sentinel kind raised by op.
func NewKind(op string, kind error) error {
	return &OpError{Op: op, Err: kind}
}

// Wrap attaches op to err. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// WrapKind attaches op and a sentinel kind to err.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return &OpError{Op: op, Err: fmt.Errorf("%w: %w", kind, err)}
}
