package nitf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestRGBColour_String(t *testing.T) {
	assert.Equal(t, "[0x01,0xab,0xff]", RGBColour{Red: 1, Green: 0xab, Blue: 0xff}.String())
}

func TestRGBColour_UnmarshalJSON(t *testing.T) {
	var fromArray, fromHex RGBColour

	assert.Nil(t, json.Unmarshal([]byte(`[1, 171, 255]`), &fromArray))
	assert.Nil(t, json.Unmarshal([]byte(`"#01abff"`), &fromHex))

	assert.Equal(t, RGBColour{Red: 1, Green: 0xab, Blue: 0xff}, fromArray)
	assert.Equal(t, fromArray, fromHex)
}

func TestRGBColour_UnmarshalJSON_Invalid(t *testing.T) {
	var colour RGBColour
	assert.NotNil(t, json.Unmarshal([]byte(`[1, 2]`), &colour))
	assert.NotNil(t, json.Unmarshal([]byte(`[1, 2, 300]`), &colour))
	assert.NotNil(t, json.Unmarshal([]byte(`"#zz0000"`), &colour))
	assert.NotNil(t, json.Unmarshal([]byte(`12`), &colour))
}

func TestRGBColour_UnmarshalYAML(t *testing.T) {
	var holder struct {
		A RGBColour `yaml:"a"`
		B RGBColour `yaml:"b"`
	}

	err := yaml.Unmarshal([]byte("a: [16, 32, 48]\nb: \"#102030\"\n"), &holder)

	assert.Nil(t, err)
	assert.Equal(t, RGBColour{Red: 0x10, Green: 0x20, Blue: 0x30}, holder.A)
	assert.Equal(t, holder.A, holder.B)
}
