package nitf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a decoded segment document
type Format string

// Supported document formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File is the decoded segment document produced by the NITF decoder
type File struct {
	Header   *Header           `json:"header" yaml:"header"`
	Images   []*ImageSegment   `json:"images" yaml:"images"`
	Graphics []*GraphicSegment `json:"graphics" yaml:"graphics"`
	Symbols  []*SymbolSegment  `json:"symbols" yaml:"symbols"`
	Labels   []*LabelSegment   `json:"labels" yaml:"labels"`
	Texts    []*TextSegment    `json:"texts" yaml:"texts"`
}

// ParseFormat maps a format name, file extension or content type onto a Format
func ParseFormat(name string) (Format, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	switch {
	case lowered == "", lowered == "json", lowered == ".json", strings.Contains(lowered, "json"):
		return FormatJSON, nil
	case lowered == "yml", lowered == ".yml", lowered == ".yaml", strings.Contains(lowered, "yaml"):
		return FormatYAML, nil
	}
	return "", fmt.Errorf("Unsupported document format `%s`", name)
}

// ReadFile decodes a segment document, reading at most maxBytes from reader
func ReadFile(reader io.Reader, format Format, maxBytes int64) (*File, error) {
	limited := io.LimitReader(reader, maxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("Document exceeds the maximum size of %d bytes", maxBytes)
	}
	return DecodeFile(data, format)
}

// DecodeFile decodes a segment document held in memory
func DecodeFile(data []byte, format Format) (*File, error) {
	var file File
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil {
			return nil, fmt.Errorf("Failed to decode JSON document: %w", err)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && err != io.EOF {
			return nil, fmt.Errorf("Failed to decode YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("Unsupported document format `%s`", format)
	}
	if file.Header == nil {
		return nil, fmt.Errorf("Document has no file header")
	}
	return &file, nil
}
