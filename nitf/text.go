package nitf

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

// TextField is an optional free-text field kept in its raw ECS-A
// (ISO 8859-1) encoding until an accessor asks for its value.
type TextField struct {
	raw []byte
	err error
}

// NewTextField wraps raw field bytes
func NewTextField(raw []byte) *TextField {
	return &TextField{raw: append([]byte(nil), raw...)}
}

// Raw returns a copy of the raw field bytes
func (f *TextField) Raw() []byte {
	return append([]byte(nil), f.raw...)
}

// TextValue decodes the field. Control characters are not part of the
// character set and make the field unreadable.
func (f *TextField) TextValue() (string, error) {
	if f == nil {
		return "", errors.New("text field is absent")
	}
	if f.err != nil {
		return "", f.err
	}
	for i, b := range f.raw {
		if b < 0x20 || (b >= 0x7f && b < 0xa0) {
			return "", fmt.Errorf("invalid character 0x%02x at offset %d in text field", b, i)
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(f.raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func (f *TextField) setText(text string) {
	f.raw, f.err = charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if f.err != nil {
		f.err = fmt.Errorf("text field %q is not representable in ISO 8859-1: %w", text, f.err)
	}
}

// UnmarshalJSON reads the field from a JSON string. Characters outside the
// field character set are not rejected here; they surface when the value is
// read.
func (f *TextField) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	f.setText(text)
	return nil
}

// UnmarshalYAML reads the field from a YAML scalar
func (f *TextField) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	f.setText(text)
	return nil
}

// MarshalJSON writes the decoded value, or null when it cannot be decoded
func (f *TextField) MarshalJSON() ([]byte, error) {
	text, err := f.TextValue()
	if err != nil {
		return []byte("null"), nil
	}
	return json.Marshal(text)
}
