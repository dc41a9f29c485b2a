package readext

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReadFString reads a length-prefixed string in the FString encoding.
//
// The encoding starts with a little-endian int32 length L:
//
//	L == 0: the empty string, no payload bytes.
//	L > 0:  L payload bytes, the first L-1 are UTF-8 text and the final
//	        byte is a null terminator. The terminator is dropped without
//	        being checked, producers do not always emit a real NUL.
//	L < 0:  -L UTF-16 code units, -L*2 payload bytes. The payload is
//	        consumed so the cursor stays aligned with the stream, then
//	        ErrUnsupportedEncoding is returned since decoding this payload
//	        kind is not implemented.
//	L == math.MinInt32: ErrMalformedLength, the magnitude cannot be
//	        negated without overflow.
func (r *Reader) ReadFString() (string, error) {
	length, err := r.ReadInt32LE()
	if err != nil {
		return "", errors.Wrap(err, "reading string length")
	}

	if length == 0 {
		return "", nil
	}

	if length < 0 {
		if length == math.MinInt32 {
			if logging {
				logger.Error("malformed string length prefix",
					zap.String("module", "readext"),
					zap.Int32("length", length),
				)
			}
			return "", ErrMalformedLength
		}

		units := -int64(length)
		payload := make([]byte, units*2)
		if _, err := io.ReadFull(r.r, payload); err != nil {
			return "", errors.Wrap(err, "reading string payload")
		}

		if logging {
			logger.Error("unsupported unicode string payload",
				zap.String("module", "readext"),
				zap.Int64("units", units),
			)
		}
		return "", errors.Wrapf(ErrUnsupportedEncoding, "%d UTF-16 code units", units)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", errors.Wrap(err, "reading string payload")
	}

	text := buf[:length-1]
	if !utf8.Valid(text) {
		return "", errors.Wrapf(ErrInvalidUTF8, "%d byte payload", length-1)
	}

	return string(text), nil
}
