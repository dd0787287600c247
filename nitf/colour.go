package nitf

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGBColour is a three-byte colour value (FBKGC, LTC, LBC)
type RGBColour struct {
	Red   byte
	Green byte
	Blue  byte
}

// String formats the colour as [0xRR,0xGG,0xBB]
func (c RGBColour) String() string {
	return fmt.Sprintf("[0x%02x,0x%02x,0x%02x]", c.Red, c.Green, c.Blue)
}

// UnmarshalJSON reads a colour either as a [r,g,b] array or as a "#rrggbb" string
func (c *RGBColour) UnmarshalJSON(data []byte) error {
	var components []int
	if err := json.Unmarshal(data, &components); err == nil {
		return c.setComponents(components)
	}
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return fmt.Errorf("colour must be [r,g,b] or \"#rrggbb\": %s", string(data))
	}
	return c.parseHex(hex)
}

// UnmarshalYAML reads a colour either as a [r,g,b] sequence or as a "#rrggbb" scalar
func (c *RGBColour) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var components []int
		if err := node.Decode(&components); err != nil {
			return err
		}
		return c.setComponents(components)
	}
	return c.parseHex(node.Value)
}

func (c *RGBColour) setComponents(components []int) error {
	if len(components) != 3 {
		return fmt.Errorf("colour needs 3 components, got %d", len(components))
	}
	for _, component := range components {
		if component < 0 || component > 255 {
			return fmt.Errorf("colour component %d out of range", component)
		}
	}
	c.Red, c.Green, c.Blue = byte(components[0]), byte(components[1]), byte(components[2])
	return nil
}

func (c *RGBColour) parseHex(hex string) error {
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &c.Red, &c.Green, &c.Blue); err != nil {
		return fmt.Errorf("invalid colour %q: %v", hex, err)
	}
	return nil
}
