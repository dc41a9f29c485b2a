package readext

import (
	"bytes"
	"testing"
)

func TestReadInt32LE(t *testing.T) {
	cases := []int32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647, -1, -2147483648}

	for _, val := range cases {
		data := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		got, err := NewReader(bytes.NewReader(data)).ReadInt32LE()
		if err != nil {
			t.Error(err)
			return
		}

		if got != val {
			t.Errorf("expected %v, got %v", val, got)
		}
	}
}

func TestReadInt32BE(t *testing.T) {
	cases := []int32{0, 10, 1000, 10000000, 2147483647, -1, -2147483648}

	for _, val := range cases {
		data := []byte{
			byte(val >> 24),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}

		got, err := NewReader(bytes.NewReader(data)).ReadInt32BE()
		if err != nil {
			t.Error(err)
			return
		}

		if got != val {
			t.Errorf("expected %v, got %v", val, got)
		}
	}
}

func TestReadInt64LE(t *testing.T) {
	cases := []int64{0, 10, 1000, 4294967295, 10000000000000, 9223372036854775807, -1, -9223372036854775808}

	for _, val := range cases {
		data := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 48) & 0xFF),
			byte(val >> 56),
		}

		got, err := NewReader(bytes.NewReader(data)).ReadInt64LE()
		if err != nil {
			t.Error(err)
			return
		}

		if got != val {
			t.Errorf("expected %v, got %v", val, got)
		}
	}
}

func TestReadInt64BE(t *testing.T) {
	cases := []int64{0, 10, 1000, 4294967295, 9223372036854775807, -1, -9223372036854775808}

	for _, val := range cases {
		data := []byte{
			byte(val >> 56),
			byte((val >> 48) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}

		got, err := NewReader(bytes.NewReader(data)).ReadInt64BE()
		if err != nil {
			t.Error(err)
			return
		}

		if got != val {
			t.Errorf("expected %v, got %v", val, got)
		}
	}
}

func TestReadUint32(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF}

	le, err := NewReader(bytes.NewReader(data)).ReadUint32LE()
	if err != nil {
		t.Error(err)
		return
	}
	if le != 4294967295 {
		t.Errorf("expected 4294967295, got %v", le)
	}

	be, err := NewReader(bytes.NewReader([]byte{0x12, 0x34, 0x56, 0x78})).ReadUint32BE()
	if err != nil {
		t.Error(err)
		return
	}
	if be != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%x", be)
	}
}

func TestReadUint64(t *testing.T) {
	le, err := NewReader(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0x80})).ReadUint64LE()
	if err != nil {
		t.Error(err)
		return
	}
	if le != 0x8000000000000001 {
		t.Errorf("expected 0x8000000000000001, got 0x%x", le)
	}

	be, err := NewReader(bytes.NewReader([]byte{0x80, 0, 0, 0, 0, 0, 0, 1})).ReadUint64BE()
	if err != nil {
		t.Error(err)
		return
	}
	if be != 0x8000000000000001 {
		t.Errorf("expected 0x8000000000000001, got 0x%x", be)
	}
}

func TestReadIntTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{1},
		{1, 2, 3},
	}

	for _, data := range cases {
		if _, err := NewReader(bytes.NewReader(data)).ReadInt32LE(); err == nil {
			t.Errorf("expected an error reading an int32 from %v bytes", len(data))
		}

		if _, err := NewReader(bytes.NewReader(data)).ReadUint64BE(); err == nil {
			t.Errorf("expected an error reading a uint64 from %v bytes", len(data))
		}
	}

	if _, err := NewReader(bytes.NewReader([]byte{1, 2, 3, 4, 5})).ReadInt64LE(); err == nil {
		t.Error("expected an error reading an int64 from 5 bytes")
	}
}
