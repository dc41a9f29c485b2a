package bytereader

import (
	"errors"
	"io"
)

var _ Reader = (*ByteReader)(nil)

// ByteReader is a simple wrapper over a byte slice that supports reading
// from a movable position
type ByteReader struct {
	pos    int
	buffer []byte
}

// NewByteReader creates a new ByteReader over the passed slice
func NewByteReader(buffer []byte) *ByteReader {
	return &ByteReader{
		pos:    0,
		buffer: buffer,
	}
}

// Pos returns the current read position of the ByteReader
func (b *ByteReader) Pos() int { return b.pos }

// SetPos sets the read position of the ByteReader to the specified position
func (b *ByteReader) SetPos(position int) error {
	if position < 0 || position > len(b.buffer) {
		return errors.New("position out of range")
	}

	b.pos = position
	return nil
}

// MustSetPos will try to set the position inside the buffer and panic on error
func (b *ByteReader) MustSetPos(position int) {
	if err := b.SetPos(position); err != nil {
		panic(err)
	}
}

// Len returns the total size of the ByteReader
func (b *ByteReader) Len() int { return len(b.buffer) }

// Remaining returns the number of unread bytes
func (b *ByteReader) Remaining() int { return len(b.buffer) - b.pos }

// Bytes returns the internal byte array of the ByteReader
func (b *ByteReader) Bytes() []byte { return b.buffer }

func (b *ByteReader) Read(p []byte) (int, error) {
	if b.pos >= len(b.buffer) {
		return 0, io.EOF
	}

	n := copy(p, b.buffer[b.pos:])
	b.pos += n

	return n, nil
}
