package readext

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Writer writes binary primitives to an underlying io.Writer, mirroring the
// encodings understood by Reader so that values round trip exactly.
type Writer struct {
	w   io.Writer
	tmp [8]byte
}

// NewWriter returns a Writer that encodes primitives to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(b []byte) error {
	n, err := w.w.Write(b)
	if err != nil {
		return errors.Wrapf(err, "writing %d bytes", len(b))
	}
	if n < len(b) {
		return io.ErrShortWrite
	}
	return nil
}

// WriteInt32LE writes a little-endian two's-complement int32.
func (w *Writer) WriteInt32LE(v int32) error { return w.WriteUint32LE(uint32(v)) }

// WriteUint32LE writes a little-endian uint32.
func (w *Writer) WriteUint32LE(v uint32) error {
	binary.LittleEndian.PutUint32(w.tmp[:4], v)
	return w.write(w.tmp[:4])
}

// WriteInt64LE writes a little-endian two's-complement int64.
func (w *Writer) WriteInt64LE(v int64) error { return w.WriteUint64LE(uint64(v)) }

// WriteUint64LE writes a little-endian uint64.
func (w *Writer) WriteUint64LE(v uint64) error {
	binary.LittleEndian.PutUint64(w.tmp[:8], v)
	return w.write(w.tmp[:8])
}

// WriteInt32BE writes a big-endian two's-complement int32.
func (w *Writer) WriteInt32BE(v int32) error { return w.WriteUint32BE(uint32(v)) }

// WriteUint32BE writes a big-endian uint32.
func (w *Writer) WriteUint32BE(v uint32) error {
	binary.BigEndian.PutUint32(w.tmp[:4], v)
	return w.write(w.tmp[:4])
}

// WriteInt64BE writes a big-endian two's-complement int64.
func (w *Writer) WriteInt64BE(v int64) error { return w.WriteUint64BE(uint64(v)) }

// WriteUint64BE writes a big-endian uint64.
func (w *Writer) WriteUint64BE(v uint64) error {
	binary.BigEndian.PutUint64(w.tmp[:8], v)
	return w.write(w.tmp[:8])
}

// WriteFString writes s in the FString encoding read by ReadFString: a
// little-endian int32 length counting the text bytes plus the null
// terminator, the UTF-8 text, then the terminator. The empty string is
// written as a lone zero length.
func (w *Writer) WriteFString(s string) error {
	if s == "" {
		return w.WriteInt32LE(0)
	}

	if len(s) >= math.MaxInt32 {
		return errors.Wrapf(ErrInvalidLength, "string of %d bytes", len(s))
	}

	if err := w.WriteInt32LE(int32(len(s) + 1)); err != nil {
		return err
	}
	if err := w.write([]byte(s)); err != nil {
		return err
	}
	w.tmp[0] = 0
	return w.write(w.tmp[:1])
}

// EncodeFunc encodes a single element to the stream.
type EncodeFunc[T any] func(*Writer, T) error

// WriteArray writes a little-endian int32 length prefix followed by the
// elements, each encoded by encode.
func WriteArray[T any](w *Writer, encode EncodeFunc[T], items []T) error {
	if int64(len(items)) > math.MaxInt32 {
		return errors.Wrapf(ErrInvalidLength, "array of %d elements", len(items))
	}

	if err := w.WriteInt32LE(int32(len(items))); err != nil {
		return errors.Wrap(err, "writing array length")
	}
	return writeElements(w, encode, items)
}

// WriteArrayBE is WriteArray with a big-endian length prefix.
func WriteArrayBE[T any](w *Writer, encode EncodeFunc[T], items []T) error {
	if int64(len(items)) > math.MaxInt32 {
		return errors.Wrapf(ErrInvalidLength, "array of %d elements", len(items))
	}

	if err := w.WriteInt32BE(int32(len(items))); err != nil {
		return errors.Wrap(err, "writing array length")
	}
	return writeElements(w, encode, items)
}

func writeElements[T any](w *Writer, encode EncodeFunc[T], items []T) error {
	for i, item := range items {
		if err := encode(w, item); err != nil {
			return errors.Wrapf(err, "encoding element %d of %d", i, len(items))
		}
	}
	return nil
}
