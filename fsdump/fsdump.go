// Package fsdump implements a layout driven decoder for binary files built
// from the primitives in readext
//
// a layout is an ordered list of named fields, each with a kind naming one of
// the readext primitives. Dump walks the layout in order against a single
// stream cursor and returns the decoded values, so a file produced by an
// FString style serializer can be inspected without writing a custom decoder
//
// the layout itself is usually loaded from a TOML file, see LoadLayout and
// the cli application in cmd/fsdump
package fsdump

import (
	"github.com/pkg/errors"

	"github.com/thoo0224/readext"
)

// Kind names a decodable primitive in a layout
type Kind string

// The set of field kinds understood by Dump
const (
	Int32LE  Kind = "i32le"
	Uint32LE Kind = "u32le"
	Int64LE  Kind = "i64le"
	Uint64LE Kind = "u64le"

	Int32BE  Kind = "i32be"
	Uint32BE Kind = "u32be"
	Int64BE  Kind = "i64be"
	Uint64BE Kind = "u64be"

	FString Kind = "fstring"

	// arrays carry a little-endian length prefix, the _be variant reads
	// both the prefix and the elements big-endian
	Int32Array   Kind = "i32_array"
	Int32ArrayBE Kind = "i32_array_be"
	FStringArray Kind = "fstring_array"
)

var kinds = map[Kind]bool{
	Int32LE:  true,
	Uint32LE: true,
	Int64LE:  true,
	Uint64LE: true,

	Int32BE:  true,
	Uint32BE: true,
	Int64BE:  true,
	Uint64BE: true,

	FString: true,

	Int32Array:   true,
	Int32ArrayBE: true,
	FStringArray: true,
}

// Valid reports whether k names a known field kind
func (k Kind) Valid() bool { return kinds[k] }

// Field describes one entry of a layout
type Field struct {
	Name string `toml:"name"`
	Kind Kind   `toml:"kind"`
}

// Layout is an ordered description of the fields of a binary file
type Layout struct {
	Fields []Field `toml:"field"`
}

// Value is a single decoded field
type Value struct {
	Name string
	Kind Kind
	Data interface{}
}

// Dump decodes the fields of layout, in order, from r. The first field that
// fails to decode aborts the whole dump
func Dump(r *readext.Reader, layout Layout) ([]Value, error) {
	values := make([]Value, 0, len(layout.Fields))

	for _, f := range layout.Fields {
		data, err := read(r, f.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "field %v", f.Name)
		}
		values = append(values, Value{f.Name, f.Kind, data})
	}

	return values, nil
}

func read(r *readext.Reader, kind Kind) (interface{}, error) {
	switch kind {
	case Int32LE:
		return r.ReadInt32LE()
	case Uint32LE:
		return r.ReadUint32LE()
	case Int64LE:
		return r.ReadInt64LE()
	case Uint64LE:
		return r.ReadUint64LE()
	case Int32BE:
		return r.ReadInt32BE()
	case Uint32BE:
		return r.ReadUint32BE()
	case Int64BE:
		return r.ReadInt64BE()
	case Uint64BE:
		return r.ReadUint64BE()
	case FString:
		return r.ReadFString()
	case Int32Array:
		return readext.ReadArray(r, (*readext.Reader).ReadInt32LE)
	case Int32ArrayBE:
		return readext.ReadArrayBE(r, (*readext.Reader).ReadInt32BE)
	case FStringArray:
		return readext.ReadArray(r, (*readext.Reader).ReadFString)
	}

	return nil, errors.Errorf("unknown field kind %q", kind)
}
