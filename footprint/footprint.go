// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package footprint

import (
	"fmt"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Builder collects one footprint polygon per georeferenced image segment and
// emits them as a single location geometry
type Builder struct {
	ctx      util.LogContext
	polygons []orb.Polygon
}

// NewBuilder creates an empty Builder logging through ctx
func NewBuilder(ctx util.LogContext) *Builder {
	return &Builder{ctx: ctx}
}

// Supported reports whether corners in the given representation are
// longitude/latitude pairs that can be used as they are
func Supported(representation nitf.CoordinatesRepresentation) bool {
	return representation == nitf.CoordinatesGeographic || representation == nitf.CoordinatesDecimalDegrees
}

// Ring builds the closed footprint ring of an image from its corners, in
// (lon, lat) order: upper left, upper right, lower right, lower left, upper left
func Ring(coordinates nitf.ImageCoordinates) orb.Ring {
	corner := func(c nitf.Coordinate) orb.Point {
		return orb.Point{c.Longitude, c.Latitude}
	}
	return orb.Ring{
		corner(coordinates.Coordinate00),
		corner(coordinates.Coordinate0MaxCol),
		corner(coordinates.CoordinateMaxRowMaxCol),
		corner(coordinates.CoordinateMaxRow0),
		corner(coordinates.Coordinate00),
	}
}

// AddImageSegment adds the footprint of segment, if it has a usable one.
// Segments without coordinates are skipped silently; any other
// representation is logged and skipped.
func (b *Builder) AddImageSegment(segment *nitf.ImageSegment) {
	if segment == nil || segment.ImageCoordinatesRepresentation.IsNone() {
		return
	}
	if !Supported(segment.ImageCoordinatesRepresentation) {
		util.LogAlert(b.ctx, fmt.Sprintf("Unsupported image coordinates representation %s in image segment `%s`, no footprint created",
			segment.ImageCoordinatesRepresentation, segment.Identifier))
		return
	}
	if segment.ImageCoordinates == nil {
		util.LogAlert(b.ctx, fmt.Sprintf("Image segment `%s` declares %s coordinates but has none, no footprint created",
			segment.Identifier, segment.ImageCoordinatesRepresentation))
		return
	}
	b.polygons = append(b.polygons, orb.Polygon{Ring(*segment.ImageCoordinates)})
}

// Len returns the number of polygons collected
func (b *Builder) Len() int {
	return len(b.polygons)
}

// Geometry returns a Polygon for a single footprint, a MultiPolygon in
// encounter order for several, and nil for none
func (b *Builder) Geometry() orb.Geometry {
	switch len(b.polygons) {
	case 0:
		return nil
	case 1:
		return b.polygons[0]
	}
	return orb.MultiPolygon(append([]orb.Polygon(nil), b.polygons...))
}

// WKT returns the geometry as WKT; ok is false when there is no footprint
func (b *Builder) WKT() (text string, ok bool) {
	geometry := b.Geometry()
	if geometry == nil {
		return "", false
	}
	return wkt.MarshalString(geometry), true
}

// GeoJSONGeometry returns the geometry as a GeoJSON Polygon or MultiPolygon,
// or nil when there is no footprint
func (b *Builder) GeoJSONGeometry() (interface{}, error) {
	geometry := b.Geometry()
	if geometry == nil {
		return nil, nil
	}
	return model.ToGeoJSONGeometry(geometry)
}
