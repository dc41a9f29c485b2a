package bytereader

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedReader is a ByteReader over a read-only memory mapped file
type MemoryMappedReader struct {
	*ByteReader
	mapping mmap.MMap
	loc     string // location of the memory mapped file
}

// NewMemoryMappedReader maps the file at loc and returns a reader over its
// contents
func NewMemoryMappedReader(loc string) (*MemoryMappedReader, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot map %v", loc)
	}

	return &MemoryMappedReader{
		NewByteReader(m),
		m,
		loc,
	}, nil
}

// Unmap will manually delete the memory mapping of the mapped file
func (r *MemoryMappedReader) Unmap() error {
	return r.mapping.Unmap()
}
