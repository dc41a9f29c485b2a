package fsdump

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadLayout reads a layout description from the TOML file at path.
//
// The file holds one [[field]] table per field, in stream order:
//
//	[[field]]
//	name = "version"
//	kind = "u32le"
//
//	[[field]]
//	name = "names"
//	kind = "fstring_array"
func LoadLayout(path string) (Layout, error) {
	var layout Layout
	if _, err := toml.DecodeFile(path, &layout); err != nil {
		return Layout{}, errors.Wrapf(err, "cannot load layout %v", path)
	}

	if len(layout.Fields) == 0 {
		return Layout{}, errors.Errorf("layout %v has no fields", path)
	}

	for _, f := range layout.Fields {
		if f.Name == "" {
			return Layout{}, errors.Errorf("layout %v has a field with no name", path)
		}
		if !f.Kind.Valid() {
			return Layout{}, errors.Errorf("field %v has unknown kind %q", f.Name, f.Kind)
		}
	}

	return layout, nil
}
