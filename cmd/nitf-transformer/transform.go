package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/transformer"
	"github.com/lcrosenbu/alliance/util"
	"github.com/venicegeo/geojson-go/geojson"
	cli "gopkg.in/urfave/cli.v1"
)

type transformOptions struct {
	format       string
	geoJSON      bool
	derivedTitle bool
	qualifier    string
}

func transformAction(c *cli.Context) error {
	ctx := &(util.BasicLogContext{})
	if len(c.Args()) == 0 {
		return errors.New("No segment document given")
	}
	options := transformOptions{
		format:       c.String("format"),
		geoJSON:      c.Bool("geojson"),
		derivedTitle: c.Bool("derived-title"),
		qualifier:    c.String("qualifier"),
	}
	if options.qualifier == "" {
		options.qualifier = util.GetDerivedQualifier()
	}

	records := make([]*model.Record, 0, len(c.Args()))
	for _, path := range c.Args() {
		record, err := transformPath(ctx, path, options)
		if err != nil {
			return util.LogSimpleErr(ctx, fmt.Sprintf("Failed to transform %s:", path), err)
		}
		records = append(records, record)
	}

	output, err := renderRecords(records, options)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to render records:", err)
	}
	fmt.Fprintln(c.App.Writer, string(output))
	return nil
}

func transformPath(ctx util.LogContext, path string, options transformOptions) (*model.Record, error) {
	formatName := options.format
	if formatName == "" {
		formatName = filepath.Ext(path)
	}
	format, err := nitf.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	reader, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	file, err := nitf.ReadFile(reader, format, util.GetMaxDocumentBytes())
	if err != nil {
		return nil, err
	}
	record, err := transformer.NewTransformer(ctx).TransformFile(file)
	if err != nil {
		return nil, err
	}
	if options.derivedTitle && !options.geoJSON {
		record.SetAttribute(model.DerivedResourceTitle, transformer.DerivedResource(record, options.qualifier).Title)
	}
	return record, nil
}

func renderRecords(records []*model.Record, options transformOptions) ([]byte, error) {
	if !options.geoJSON {
		if len(records) == 1 {
			return json.MarshalIndent(records[0], "", "  ")
		}
		return json.MarshalIndent(records, "", "  ")
	}

	creators := make([]model.GeoJSONFeatureCreator, len(records))
	for i, record := range records {
		creators[i] = featureCreator{record: record, options: options}
	}
	if len(creators) == 1 {
		feature, err := creators[0].GeoJSONFeature()
		if err != nil {
			return nil, err
		}
		return []byte(feature.String()), nil
	}
	collection, err := model.RecordCollection{FeatureCreators: creators}.GeoJSONFeatureCollection()
	if err != nil {
		return nil, err
	}
	return []byte(collection.String()), nil
}

// featureCreator adds the derived image name to the feature of a record
// when asked to
type featureCreator struct {
	record  *model.Record
	options transformOptions
}

func (fc featureCreator) GeoJSONFeature() (*geojson.Feature, error) {
	feature, err := fc.record.GeoJSONFeature()
	if err != nil {
		return nil, err
	}
	if fc.options.derivedTitle {
		if err = transformer.DerivedResource(fc.record, fc.options.qualifier).Apply(feature); err != nil {
			return nil, err
		}
	}
	return feature, nil
}
