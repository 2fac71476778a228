package digest

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrInvalidArgument reports a caller defect, such as a dataset that
	// produced no hashable content.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnimplemented reports a permanently missing capability. Retrying
	// never helps.
	ErrUnimplemented = errors.New("unimplemented")
)

// InvalidArgumentError carries a human readable reason for an
// ErrInvalidArgument failure.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	if e.Msg == "" {
		return ErrInvalidArgument.Error()
	}
	return fmt.Sprintf("invalid argument: %s", e.Msg)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
func (e *InvalidArgumentError) Unwrap() error        { return ErrInvalidArgument }
func (e *InvalidArgumentError) Retryable() bool      { return false }

// NewInvalidArgumentError creates an InvalidArgumentError with a message.
func NewInvalidArgumentError(msg string) error {
	return &InvalidArgumentError{Msg: msg}
}

// UnimplementedError names the operation that is not available.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	if e.Op == "" {
		return ErrUnimplemented.Error()
	}
	return fmt.Sprintf("%s is not yet implemented", e.Op)
}

func (e *UnimplementedError) Is(target error) bool { return target == ErrUnimplemented }
func (e *UnimplementedError) Unwrap() error        { return ErrUnimplemented }
func (e *UnimplementedError) Retryable() bool      { return false }

// NewUnimplementedError creates an UnimplementedError for op.
func NewUnimplementedError(op string) error {
	return &UnimplementedError{Op: op}
}

type retryable interface{ Retryable() bool }

// IsInvalidArgument reports whether err is (or wraps) ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnimplemented reports whether err is (or wraps) ErrUnimplemented.
func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplemented)
}

// IsRetryable inspects the error chain for a Retryable() bool implementation
// and returns its result (false if none found). Digest errors are
// deterministic and never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var r retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}
