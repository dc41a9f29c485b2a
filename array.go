package readext

import "github.com/pkg/errors"

// DecodeFunc decodes a single element from the stream. It is invoked once per
// element, back to back, and is expected to consume a deterministic or
// self-describing number of bytes.
type DecodeFunc[T any] func(*Reader) (T, error)

// ReadArray reads a little-endian int32 length prefix followed by that many
// elements, each decoded by decode.
func ReadArray[T any](r *Reader, decode DecodeFunc[T]) ([]T, error) {
	length, err := r.ReadInt32LE()
	if err != nil {
		return nil, errors.Wrap(err, "reading array length")
	}
	return ReadArrayWithLength(r, decode, length)
}

// ReadArrayBE is ReadArray with a big-endian length prefix.
func ReadArrayBE[T any](r *Reader, decode DecodeFunc[T]) ([]T, error) {
	length, err := r.ReadInt32BE()
	if err != nil {
		return nil, errors.Wrap(err, "reading array length")
	}
	return ReadArrayWithLength(r, decode, length)
}

// ReadArrayWithLength reads exactly length elements, no length prefix is
// consumed from the stream. The first element that fails to decode aborts
// the whole read, no partial slice is returned.
func ReadArrayWithLength[T any](r *Reader, decode DecodeFunc[T], length int32) ([]T, error) {
	if length < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "array length %d", length)
	}

	result := make([]T, 0, length)
	for i := int32(0); i < length; i++ {
		item, err := decode(r)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding element %d of %d", i, length)
		}
		result = append(result, item)
	}

	return result, nil
}
