package jsonval

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the codec. Decode and Encode failures wrap
// one of these, so callers can classify with errors.Is.
var (
	// ErrEncoding means a byte span was not valid for the detected encoding.
	ErrEncoding = errors.New("invalid byte sequence for encoding")

	// ErrUnexpectedEnd means the input ended inside an unfinished construct.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrInvalidEscape means a string contained a malformed escape sequence.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrMissingSurrogate means a \u lead surrogate was not followed by a
	// \u trail surrogate.
	ErrMissingSurrogate = errors.New("missing trailing surrogate")

	// ErrMissingObjectKey means an object member did not start with a
	// string key.
	ErrMissingObjectKey = errors.New("missing object key")

	// ErrMissingValue means an object member had a key but no value.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidSeparator means an object used a wrong separator between
	// key and value or between members.
	ErrInvalidSeparator = errors.New("invalid separator")

	// ErrMalformedArray means an array was not a comma-separated list of
	// values.
	ErrMalformedArray = errors.New("malformed array")

	// ErrInvalidDocument means the top level was not an array or object and
	// fragments were not permitted.
	ErrInvalidDocument = errors.New("did not start with array or object")

	// ErrTrailingData means non-whitespace input followed a complete
	// document.
	ErrTrailingData = errors.New("unexpected trailing data")

	// ErrNonFiniteNumber means a NaN or infinite number reached the
	// serializer.
	ErrNonFiniteNumber = errors.New("non-finite number")
)

// SyntaxError is a decode failure at a known position. Offset counts code
// units of the detected encoding, not bytes. It unwraps to one of the
// sentinel errors above.
type SyntaxError struct {
	Offset int64
	err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

// syntaxErr builds a SyntaxError from a sentinel and a code-unit offset.
func syntaxErr(err error, offset int64) error {
	return &SyntaxError{Offset: offset, err: err}
}
