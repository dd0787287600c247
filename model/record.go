package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/venicegeo/geojson-go/geojson"
)

// Record is an in-memory Metacard. Attribute names keep the order in which
// they were first set.
type Record struct {
	ID     string
	names  []string
	values map[string]interface{}
}

// NewRecord creates an empty record with a random ID
func NewRecord() *Record {
	return &Record{
		ID:     uuid.NewString(),
		values: map[string]interface{}{},
	}
}

// SetAttribute implements the Metacard interface
func (r *Record) SetAttribute(name string, value interface{}) {
	if r.values == nil {
		r.values = map[string]interface{}{}
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Attribute implements the Metacard interface
func (r *Record) Attribute(name string) (interface{}, bool) {
	value, ok := r.values[name]
	return value, ok
}

// Names returns the attribute names in the order they were first set
func (r *Record) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of attributes
func (r *Record) Len() int {
	return len(r.names)
}

// Map returns the attributes in serialized form
func (r *Record) Map() map[string]interface{} {
	result := make(map[string]interface{}, len(r.names))
	for _, name := range r.names {
		result[name] = serializable(r.values[name])
	}
	return result
}

// MarshalJSON writes the attributes as a JSON object, in record order
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(serializable(r.values[name]))
		if err != nil {
			return nil, fmt.Errorf("Failed to serialize attribute %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Geometry decodes the WKT location attribute into a GeoJSON geometry. A
// record without a location has a nil geometry.
func (r *Record) Geometry() (interface{}, error) {
	value, ok := r.values[Location]
	if !ok || value == nil {
		return nil, nil
	}
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("Location attribute is not WKT text: %T", value)
	}
	geometry, err := wkt.Unmarshal(text)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse location `%s`: %w", text, err)
	}
	return ToGeoJSONGeometry(geometry)
}

// ToGeoJSONGeometry converts a polygonal orb geometry into its GeoJSON equivalent
func ToGeoJSONGeometry(geometry orb.Geometry) (interface{}, error) {
	switch g := geometry.(type) {
	case orb.Polygon:
		return geojson.NewPolygon(polygonCoordinates(g)), nil
	case orb.MultiPolygon:
		coordinates := make([][][][]float64, len(g))
		for i, polygon := range g {
			coordinates[i] = polygonCoordinates(polygon)
		}
		return geojson.NewMultiPolygon(coordinates), nil
	}
	return nil, fmt.Errorf("Unsupported location geometry %s", geometry.GeoJSONType())
}

func polygonCoordinates(polygon orb.Polygon) [][][]float64 {
	rings := make([][][]float64, len(polygon))
	for i, ring := range polygon {
		rings[i] = make([][]float64, len(ring))
		for j, point := range ring {
			rings[i][j] = []float64{point[0], point[1]}
		}
	}
	return rings
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (r *Record) GeoJSONFeature() (*geojson.Feature, error) {
	geometry, err := r.Geometry()
	if err != nil {
		return nil, err
	}
	properties := r.Map()
	delete(properties, Location)
	f := geojson.NewFeature(geometry, r.ID, properties)
	if geometry != nil {
		f.Bbox = f.ForceBbox()
	}
	return f, nil
}

// RecordCollection is a container type for bundling multiple records
// together, e.g. the results of transforming several files
type RecordCollection struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (c RecordCollection) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(c.FeatureCreators))
	for i, creator := range c.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
