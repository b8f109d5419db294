package errors

import "fmt"

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// OffsetError reports a failure tied to a character offset of some input.
type OffsetError struct {
	Offset int
	Word   string
	Err    error
}

func (e *OffsetError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d near %q", e.Err, e.Offset, e.Word)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}
