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

package transformer

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lcrosenbu/alliance/footprint"
	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/util"
)

// ErrInvalidArgument is returned when Transform is called without a segment
// flow or a record
var ErrInvalidArgument = errors.New("invalid argument")

// Transformer maps the segments of a decoded NITF file onto a catalog record
type Transformer struct {
	ctx util.LogContext
}

// NewTransformer creates a Transformer logging through ctx
func NewTransformer(ctx util.LogContext) *Transformer {
	if ctx == nil {
		ctx = util.NewBasicLogContext()
	}
	return &Transformer{ctx: ctx}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func validateArgument(value interface{}, name string) error {
	if isNil(value) {
		return fmt.Errorf("Argument '%s' may not be nil: %w", name, ErrInvalidArgument)
	}
	return nil
}

// Transform writes the attributes of every segment of flow into record: the
// file header once, then each image segment together with its footprint,
// then the graphic, text, symbol and label segments. Fields that cannot be
// read are logged and skipped.
func (t *Transformer) Transform(flow *nitf.SegmentsFlow, record model.Metacard) error {
	if err := validateArgument(flow, "flow"); err != nil {
		return err
	}
	if err := validateArgument(record, "record"); err != nil {
		return err
	}

	tres := newTreHandler(t.ctx)
	header := NewSegmentHandler(t.ctx, HeaderFields)
	images := NewSegmentHandler(t.ctx, ImageFields)
	graphics := NewSegmentHandler(t.ctx, GraphicFields)
	texts := NewSegmentHandler(t.ctx, TextFields)
	symbols := NewSegmentHandler(t.ctx, SymbolFields)
	labels := NewSegmentHandler(t.ctx, LabelFields)
	builder := footprint.NewBuilder(t.ctx)

	flow.
		FileHeader(func(segment *nitf.Header) {
			t.setFileDates(record, segment)
			header.HandleSegment(record, segment)
			tres.handleTres(record, segment.Tres)
		}).
		ForEachImageSegment(func(segment *nitf.ImageSegment) {
			images.HandleSegment(record, segment)
			tres.handleTres(record, segment.Tres)
			builder.AddImageSegment(segment)
		}).
		ForEachGraphicSegment(func(segment *nitf.GraphicSegment) { graphics.HandleSegment(record, segment) }).
		ForEachTextSegment(func(segment *nitf.TextSegment) { texts.HandleSegment(record, segment) }).
		ForEachSymbolSegment(func(segment *nitf.SymbolSegment) { symbols.HandleSegment(record, segment) }).
		ForEachLabelSegment(func(segment *nitf.LabelSegment) { labels.HandleSegment(record, segment) }).
		End()

	if location, ok := builder.WKT(); ok {
		record.SetAttribute(model.Location, location)
	}
	return nil
}

// TransformFile transforms a decoded segment document into a new record
func (t *Transformer) TransformFile(file *nitf.File) (*model.Record, error) {
	if file == nil {
		return nil, fmt.Errorf("Argument 'file' may not be nil: %w", ErrInvalidArgument)
	}
	record := model.NewRecord()
	if err := t.Transform(nitf.NewSegmentsFlow(file), record); err != nil {
		return nil, err
	}
	util.LogAudit(t.ctx, util.LogAuditInput{Actor: "transformer", Action: "transform", Actee: record.ID,
		Message: fmt.Sprintf("Transformed NITF file into %d attributes", record.Len()), Severity: util.INFO})
	return record, nil
}

// DerivedResource names the derived image of a record from its title
func DerivedResource(record model.Metacard, qualifier string) model.DerivedResource {
	title, _ := record.Attribute(model.Title)
	text, _ := title.(string)
	return model.DerivedResource{Title: BuildDerivedImageTitle(text, qualifier), Qualifier: qualifier}
}

// setFileDates sets the modified, created and effective dates of the record
// to the file date and time, when it can be read
func (t *Transformer) setFileDates(record model.Metacard, header *nitf.Header) {
	if header.FileDateTime.IsZero() {
		return
	}
	date, err := header.FileDateTime.Time()
	if err != nil {
		util.LogAlert(t.ctx, fmt.Sprintf("Failed to read the file date and time: %v", err))
		return
	}
	record.SetAttribute(model.Modified, date)
	record.SetAttribute(model.Created, date)
	record.SetAttribute(model.Effective, date)
}
