package readext

import "github.com/pkg/errors"

// Sentinel errors returned by the readers. They are always wrapped with
// context before being returned, use errors.Is or errors.Cause to match.
var (
	// ErrInvalidLength is returned when an array length prefix, or a length
	// passed by the caller, is negative and cannot denote an element count.
	ErrInvalidLength = errors.New("invalid length")

	// ErrMalformedLength is returned when a string length prefix is
	// math.MinInt32, a magnitude that cannot be negated without overflow.
	ErrMalformedLength = errors.New("malformed string length")

	// ErrUnsupportedEncoding is returned when a string declares a UTF-16
	// payload. The payload bytes are consumed but not decoded.
	ErrUnsupportedEncoding = errors.New("unicode strings are not supported")

	// ErrInvalidUTF8 is returned when a string payload declared as text is
	// not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string payload is not valid UTF-8")
)
