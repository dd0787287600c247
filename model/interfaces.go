package model

import "github.com/venicegeo/geojson-go/geojson"

// Metacard is the catalog record a transformer writes attributes into.
// Setting an attribute that already exists overwrites it.
type Metacard interface {
	SetAttribute(name string, value interface{})
	Attribute(name string) (interface{}, bool)
}

// GeoJSONFeatureCreator is an interface for data that can convert itself to a GeoJSON feature
type GeoJSONFeatureCreator interface {
	GeoJSONFeature() (*geojson.Feature, error)
}

// GeoJSONFeatureCollectionCreator is an interface for data that can convert itself to a GeoJSON feature collection
type GeoJSONFeatureCollectionCreator interface {
	GeoJSONFeatureCollection() (*geojson.FeatureCollection, error)
}

// GeoJSONFeatureMixin is an interface for data that can be used to augment an existing GeoJSON feature
type GeoJSONFeatureMixin interface {
	Apply(*geojson.Feature) error
}
