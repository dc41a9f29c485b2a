package readext

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader reads binary primitives from an underlying io.Reader.
//
// The underlying stream is owned by the caller; the Reader borrows it and
// advances its cursor with every successful read. On a failed read the cursor
// position is unspecified, the underlying reader may have consumed part of
// the requested bytes. A stream must not be shared between two Readers, two
// independent cursors over the same bytes silently desynchronize.
type Reader struct {
	r   io.Reader
	tmp [8]byte
}

// NewReader returns a Reader that decodes primitives from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader by passing through to the underlying stream.
func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// readFull fills r.tmp[:n] from the stream, n must be at most 8.
func (r *Reader) readFull(n int) ([]byte, error) {
	b := r.tmp[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, errors.Wrapf(err, "reading %d bytes", n)
	}
	return b, nil
}

// ReadInt32LE reads a little-endian two's-complement int32.
func (r *Reader) ReadInt32LE() (int32, error) {
	v, err := r.ReadUint32LE()
	return int32(v), err
}

// ReadUint32LE reads a little-endian uint32.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt64LE reads a little-endian two's-complement int64.
func (r *Reader) ReadInt64LE() (int64, error) {
	v, err := r.ReadUint64LE()
	return int64(v), err
}

// ReadUint64LE reads a little-endian uint64.
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt32BE reads a big-endian two's-complement int32.
func (r *Reader) ReadInt32BE() (int32, error) {
	v, err := r.ReadUint32BE()
	return int32(v), err
}

// ReadUint32BE reads a big-endian uint32.
func (r *Reader) ReadUint32BE() (uint32, error) {
	b, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt64BE reads a big-endian two's-complement int64.
func (r *Reader) ReadInt64BE() (int64, error) {
	v, err := r.ReadUint64BE()
	return int64(v), err
}

// ReadUint64BE reads a big-endian uint64.
func (r *Reader) ReadUint64BE() (uint64, error) {
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}
