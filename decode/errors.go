package decode

import (
	"fmt"

	"github.com/corvidlabs/caldecode/utility"
)

// BadFormatError reports a syntactic or semantic rejection: an empty
// field, an unrecognized token, a numeric field that cannot be placed
// given what came before, or a malformed timezone. It wraps the
// underlying cause when one exists so errors.As/errors.Unwrap can reach
// it.
type BadFormatError struct {
	Message string
	Input   []byte
	Cause   error
}

func (e *BadFormatError) Error() string {
	input := utility.BytesToString(e.Input...)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (input %q)", e.Message, e.Cause, input)
	}
	if len(e.Input) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %q", e.Message, input)
}

func (e *BadFormatError) Unwrap() error {
	return e.Cause
}

func badFormat(message string, input []byte) error {
	return &BadFormatError{Message: message, Input: input}
}

func badFormatf(message string, input []byte, cause error) error {
	return &BadFormatError{Message: message, Input: input, Cause: cause}
}

// TimezoneOverflowError reports an hour/minute/second component outside
// the bounds decode_timezone accepts.
type TimezoneOverflowError struct {
	Input string
}

func (e *TimezoneOverflowError) Error() string {
	return fmt.Sprintf("timezone offset out of range: %q", e.Input)
}
