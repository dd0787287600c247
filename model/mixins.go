package model

import "github.com/venicegeo/geojson-go/geojson"

// DerivedResource is a mixin naming the derived image product generated for
// a record, e.g. a thumbnail or overview
type DerivedResource struct {
	Title     string
	Qualifier string
}

// Apply implements the GeoJSONFeatureMixin interface
func (dr DerivedResource) Apply(feature *geojson.Feature) error {
	if feature.Properties == nil {
		feature.Properties = map[string]interface{}{}
	}
	feature.Properties[DerivedResourceTitle] = dr.Title
	feature.Properties["resource.derived-qualifier"] = dr.Qualifier
	return nil
}
