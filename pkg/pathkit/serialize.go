package pathkit

import (
	"gopkg.in/yaml.v3"
)

// A Path serializes as its single raw string; decode(encode(p)) == p on
// raw-string equality. TextMarshaler/TextUnmarshaler cover
// encoding/json, go-toml and anything else honoring encoding.Text*;
// the yaml.v3 interfaces are implemented explicitly since that package
// predates them.

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	p.raw = string(text)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Path) MarshalYAML() (interface{}, error) {
	return p.raw, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.raw = raw
	return nil
}
