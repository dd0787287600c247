package transformer

import (
	"strings"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
)

// targetID reads the optional TGTID text field
func targetID(segment *nitf.ImageSegment) (interface{}, error) {
	if segment.ImageTargetID == nil {
		return nil, nil
	}
	value, err := segment.ImageTargetID.TextValue()
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(value), nil
}

// ImageFields is the field table of image segments
var ImageFields = NewFieldTable(
	typedField(model.DateTimeStart, "IDATIM", model.Date, func(s *nitf.ImageSegment) (interface{}, error) { return nitfDate(s.ImageDateTime) }),
	stringField(model.IsrTargetID, "TGTID", targetID),
	stringField(model.IsrImageID, "IID2", func(s *nitf.ImageSegment) (interface{}, error) { return s.ImageIdentifier2, nil }),
	stringField(model.IsrOriginalSource, "ISORCE", func(s *nitf.ImageSegment) (interface{}, error) { return s.ImageSource, nil }),
	typedField(model.MediaHeightPixels, "NROWS", model.Long, func(s *nitf.ImageSegment) (interface{}, error) { return s.NumberOfRows, nil }),
	typedField(model.MediaWidthPixels, "NCOLS", model.Long, func(s *nitf.ImageSegment) (interface{}, error) { return s.NumberOfColumns, nil }),
	stringField(model.MediaEncoding, "IREP", func(s *nitf.ImageSegment) (interface{}, error) { return s.ImageRepresentation, nil }),
	stringField(model.IsrCategory, "ICAT", func(s *nitf.ImageSegment) (interface{}, error) { return s.ImageCategory, nil }),
	stringField(model.MediaCompression, "IC", func(s *nitf.ImageSegment) (interface{}, error) { return s.ImageCompression, nil }),
)
