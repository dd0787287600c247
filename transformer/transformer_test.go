package transformer

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/util"
	"github.com/stretchr/testify/assert"
)

// General test mocks and utils

func mockImageSegment(representation nitf.CoordinatesRepresentation, offset float64) *nitf.ImageSegment {
	return &nitf.ImageSegment{
		Identifier:                     "Missing ID",
		ImageDateTime:                  "20140312071530",
		ImageTargetID:                  nitf.NewTextField([]byte("AIRFIELD 7 ")),
		ImageIdentifier2:               "IID2VALUE",
		ImageSource:                    "Unknown",
		NumberOfRows:                   1024,
		NumberOfColumns:                2048,
		ImageRepresentation:            nitf.Monochrome,
		ImageCategory:                  nitf.CategoryVisual,
		ImageCompression:               nitf.NotCompressed,
		ImageCoordinatesRepresentation: representation,
		ImageCoordinates: &nitf.ImageCoordinates{
			Coordinate00:           nitf.Coordinate{Longitude: offset, Latitude: offset},
			Coordinate0MaxCol:      nitf.Coordinate{Longitude: offset, Latitude: offset + 1},
			CoordinateMaxRowMaxCol: nitf.Coordinate{Longitude: offset + 1, Latitude: offset + 1},
			CoordinateMaxRow0:      nitf.Coordinate{Longitude: offset + 1, Latitude: offset},
		},
		Security: &nitf.SecurityMetadata{Classification: nitf.Unclassified},
	}
}

func mockHeader(fileDateTime nitf.DateTime) *nitf.Header {
	return &nitf.Header{
		FileType:               nitf.NitfTwoOne,
		ComplexityLevel:        3,
		StandardType:           "BF01",
		OriginatingStationID:   "i_3001a",
		FileDateTime:           fileDateTime,
		FileTitle:              "Checks an uncompressed 1024x1024 8 bit mono image",
		FileBackgroundColour:   &nitf.RGBColour{Red: 0xff, Green: 0xff, Blue: 0xff},
		OriginatorsName:        "JITC Fort Huachuca",
		OriginatorsPhoneNumber: "(520) 538-5458",
		FileSecurity: &nitf.FileSecurityMetadata{
			SecurityMetadata: nitf.SecurityMetadata{
				Classification:       nitf.Unclassified,
				ClassificationSystem: "US",
				Codewords:            "CW",
				ControlAndHandling:   "CH",
			},
			FileCopyNumber:     "00000",
			FileNumberOfCopies: "00000",
		},
	}
}

func attribute(record *model.Record, name string) interface{} {
	value, _ := record.Attribute(name)
	return value
}

// Actual tests

func TestTransform_InvalidArguments(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	flow := nitf.NewSegmentsFlow(&nitf.File{Header: mockHeader("20140312071530")})
	var nilRecord *model.Record

	// Tested code
	errNilFlow := transformer.Transform(nil, model.NewRecord())
	errNilRecord := transformer.Transform(flow, nil)
	errTypedNilRecord := transformer.Transform(flow, nilRecord)

	// Asserts
	assert.True(t, errors.Is(errNilFlow, ErrInvalidArgument))
	assert.True(t, errors.Is(errNilRecord, ErrInvalidArgument))
	assert.True(t, errors.Is(errTypedNilRecord, ErrInvalidArgument))
	assert.Contains(t, errNilFlow.Error(), "flow")
	assert.Contains(t, errNilRecord.Error(), "record")
}

func TestTransform_Header(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{Header: mockHeader("20140312071530")})
	expectedDate := time.Date(2014, time.March, 12, 7, 15, 30, 0, time.UTC)

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "NITF_TWO_ONE", attribute(record, model.MediaFormat))
	assert.Equal(t, "NITF_TWO_ONE", attribute(record, model.MediaFormatVersion))
	assert.Equal(t, 3, attribute(record, "nitf.complexityLevel"))
	assert.Equal(t, "i_3001a", attribute(record, model.SourceID))
	assert.Equal(t, expectedDate, attribute(record, "nitf.fileDateAndTime"))
	assert.Equal(t, "Checks an uncompressed 1024x1024 8 bit mono image", attribute(record, model.Title))
	assert.Equal(t, "UNCLASSIFIED", attribute(record, model.SecurityClassification))
	assert.Equal(t, "US", attribute(record, model.SecurityClassificationSystem))
	assert.Equal(t, "CW", attribute(record, "nitf.fileCodewords"))
	assert.Equal(t, "CH", attribute(record, model.SecurityCodewords))
	assert.Equal(t, "00000", attribute(record, "nitf.fileCopyNumber"))
	assert.Equal(t, "[0xff,0xff,0xff]", attribute(record, "nitf.fileBackgroundColor"))
	assert.Equal(t, "JITC Fort Huachuca", attribute(record, model.ContactCreatorName))
	assert.Equal(t, "(520) 538-5458", attribute(record, model.ContactCreatorPhone))
	_, hasLocation := record.Attribute(model.Location)
	assert.False(t, hasLocation)
}

func TestTransform_HeaderWithoutBackgroundColour(t *testing.T) {
	// Mock
	ctx := &util.RecordingLogContext{Quiet: true}
	record := model.NewRecord()
	header := mockHeader("20140312071530")
	header.FileBackgroundColour = nil

	// Tested code
	err := NewTransformer(ctx).Transform(nitf.NewSegmentsFlow(&nitf.File{Header: header}), record)

	// Asserts
	assert.Nil(t, err)
	_, found := record.Attribute("nitf.fileBackgroundColor")
	assert.False(t, found)
	assert.Empty(t, ctx.Messages(util.WARNING))
}

func TestTransform_DerivedDates(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{Header: mockHeader("20140312071530")})

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	expected := time.Date(2014, time.March, 12, 7, 15, 30, 0, time.UTC)
	assert.Equal(t, expected, attribute(record, model.Modified))
	assert.Equal(t, expected, attribute(record, model.Created))
	assert.Equal(t, expected, attribute(record, model.Effective))
}

func TestTransform_DerivedDatesAbsent(t *testing.T) {
	for _, fileDateTime := range []nitf.DateTime{"", "2014----071530"} {
		// Mock
		transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
		record := model.NewRecord()
		flow := nitf.NewSegmentsFlow(&nitf.File{Header: mockHeader(fileDateTime)})

		// Tested code
		err := transformer.Transform(flow, record)

		// Asserts
		assert.Nil(t, err)
		for _, name := range []string{model.Modified, model.Created, model.Effective, "nitf.fileDateAndTime"} {
			_, found := record.Attribute(name)
			assert.False(t, found, "%s for %q", name, fileDateTime)
		}
	}
}

func TestTransform_OneImage(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{
		Header: mockHeader("20140312071530"),
		Images: []*nitf.ImageSegment{mockImageSegment(nitf.CoordinatesGeographic, 0)},
	})

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "POLYGON((0 0,0 1,1 1,1 0,0 0))", attribute(record, model.Location))
	assert.Equal(t, time.Date(2014, time.March, 12, 7, 15, 30, 0, time.UTC), attribute(record, model.DateTimeStart))
	assert.Equal(t, "AIRFIELD 7", attribute(record, model.IsrTargetID))
	assert.Equal(t, "IID2VALUE", attribute(record, model.IsrImageID))
	assert.Equal(t, "Unknown", attribute(record, model.IsrOriginalSource))
	assert.Equal(t, int64(1024), attribute(record, model.MediaHeightPixels))
	assert.Equal(t, int64(2048), attribute(record, model.MediaWidthPixels))
	assert.Equal(t, "MONOCHROME", attribute(record, model.MediaEncoding))
	assert.Equal(t, "VISUAL", attribute(record, model.IsrCategory))
	assert.Equal(t, "NOTCOMPRESSED", attribute(record, model.MediaCompression))
}

func TestTransform_TwoImages(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{
		Header: mockHeader("20140312071530"),
		Images: []*nitf.ImageSegment{
			mockImageSegment(nitf.CoordinatesGeographic, 0),
			mockImageSegment(nitf.CoordinatesDecimalDegrees, 5),
		},
	})

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "MULTIPOLYGON(((0 0,0 1,1 1,1 0,0 0)),((5 5,5 6,6 6,6 5,5 5)))", attribute(record, model.Location))
}

func TestTransform_LastImageSegmentWins(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	record := model.NewRecord()
	first := mockImageSegment(nitf.CoordinatesGeographic, 0)
	second := mockImageSegment(nitf.CoordinatesGeographic, 5)
	second.NumberOfRows = 0
	second.ImageSource = "Second"
	second.ImageTargetID = nil
	flow := nitf.NewSegmentsFlow(&nitf.File{
		Header: mockHeader("20140312071530"),
		Images: []*nitf.ImageSegment{first, second},
	})

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, int64(0), attribute(record, model.MediaHeightPixels))
	assert.Equal(t, "Second", attribute(record, model.IsrOriginalSource))
	// fields the second segment does not carry keep the first value
	assert.Equal(t, "AIRFIELD 7", attribute(record, model.IsrTargetID))
}

func TestTransform_UnsupportedRepresentation(t *testing.T) {
	// Mock
	ctx := &util.RecordingLogContext{Quiet: true}
	transformer := NewTransformer(ctx)
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{
		Header: mockHeader("20140312071530"),
		Images: []*nitf.ImageSegment{mockImageSegment(nitf.CoordinatesMGRS, 0)},
	})

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	_, hasLocation := record.Attribute(model.Location)
	assert.False(t, hasLocation)
	assert.Equal(t, int64(1024), attribute(record, model.MediaHeightPixels))
	assert.Equal(t, "AIRFIELD 7", attribute(record, model.IsrTargetID))
	assert.Len(t, ctx.Messages(util.WARNING), 1)
}

func TestTransform_BadTargetIDIsSkipped(t *testing.T) {
	// Mock
	ctx := &util.RecordingLogContext{Quiet: true}
	segment := mockImageSegment(nitf.CoordinatesGeographic, 0)
	segment.ImageTargetID = nitf.NewTextField([]byte("BAD\x00ID"))
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{Header: mockHeader(""), Images: []*nitf.ImageSegment{segment}})

	// Tested code
	err := NewTransformer(ctx).Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	_, hasTargetID := record.Attribute(model.IsrTargetID)
	assert.False(t, hasTargetID)
	assert.Equal(t, "IID2VALUE", attribute(record, model.IsrImageID))
	assert.NotNil(t, attribute(record, model.Location))
	assert.Len(t, ctx.Messages(util.WARNING), 1)
}

func TestTransform_OtherSegments(t *testing.T) {
	// Mock
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{
		Header: mockHeader("20140312071530"),
		Graphics: []*nitf.GraphicSegment{{
			Identifier:            "GRAPHIC1",
			GraphicLocationRow:    10,
			GraphicLocationColumn: 20,
			GraphicColour:         nitf.GraphicColourColour,
			Security:              &nitf.SecurityMetadata{Classification: nitf.Restricted},
		}},
		Symbols: []*nitf.SymbolSegment{{
			Identifier:            "SYM1",
			SymbolType:            nitf.SymbolCGM,
			SymbolLocation2Row:    3,
			SymbolLocation2Column: 4,
			SymbolColour:          nitf.SymbolColourRed,
		}},
		Labels: []*nitf.LabelSegment{{
			Identifier:      "LABEL1",
			LabelTextColour: &nitf.RGBColour{Red: 1, Green: 2, Blue: 3},
		}},
		Texts: []*nitf.TextSegment{{
			Identifier:   "TEXT1",
			TextDateTime: "20140312071530",
			TextFormat:   nitf.TextUSMTF,
			Security:     &nitf.SecurityMetadata{Classification: nitf.Secret, ClassificationSystem: "NATO"},
		}},
	})

	// Tested code
	err := transformer.Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "SY", attribute(record, "nitf.graphic.filePartType"))
	assert.Equal(t, "GRAPHIC1", attribute(record, "nitf.graphic.graphicIdentifier"))
	assert.Equal(t, "10,20", attribute(record, "nitf.graphic.graphicLocation"))
	assert.Equal(t, "COLOUR", attribute(record, "nitf.graphic.graphicColor"))
	assert.Equal(t, "RESTRICTED", attribute(record, "nitf.graphic.graphicSecurityClassification"))

	assert.Equal(t, "SY", attribute(record, "nitf.symbol.filePartType"))
	assert.Equal(t, "CGM", attribute(record, "nitf.symbol.symbolType"))
	assert.Equal(t, "3,4", attribute(record, "nitf.symbol.secondSymbolLocation"))
	assert.Equal(t, "RED", attribute(record, "nitf.symbol.symbolColor"))
	_, hasSymbolClassification := record.Attribute("nitf.symbol.symbolSecurityClassification")
	assert.False(t, hasSymbolClassification)

	assert.Equal(t, "LA", attribute(record, "nitf.label.filePartType"))
	assert.Equal(t, "[0x01,0x02,0x03]", attribute(record, "nitf.label.labelTextColor"))
	_, hasBackground := record.Attribute("nitf.label.labelBackgroundColor")
	assert.False(t, hasBackground)

	assert.Equal(t, "TE", attribute(record, "nitf.text.filePartType"))
	assert.Equal(t, "USMTF", attribute(record, "nitf.text.textFormat"))
	assert.Equal(t, "NATO", attribute(record, "nitf.text.textSecurityClassification"))
	assert.Equal(t, "NATO", attribute(record, "nitf.text.textClassificationSecuritySystem"))
	assert.Equal(t, time.Date(2014, time.March, 12, 7, 15, 30, 0, time.UTC), attribute(record, "nitf.text.textDateAndTime"))
}

func TestTransform_Tres(t *testing.T) {
	// Mock
	header := mockHeader("20140312071530")
	header.Tres = []nitf.Tre{mockAcftb}
	image := mockImageSegment(nitf.CoordinatesGeographic, 0)
	image.Tres = []nitf.Tre{mockMtirpb}
	record := model.NewRecord()
	flow := nitf.NewSegmentsFlow(&nitf.File{Header: header, Images: []*nitf.ImageSegment{image}})

	// Tested code
	err := NewTransformer(&util.RecordingLogContext{Quiet: true}).Transform(flow, record)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "MISSION 42", attribute(record, model.IsrMissionID))
	assert.Equal(t, "003", attribute(record, model.IsrTargetReportCount))
	assert.Equal(t, "01,02,03", attribute(record, "nitf.mtirpb.targetAmplitude"))
	assert.Equal(t, "POLYGON((0 0,0 1,1 1,1 0,0 0))", attribute(record, model.Location))
}

func TestTransform_Idempotent(t *testing.T) {
	file := &nitf.File{
		Header: mockHeader("20140312071530"),
		Images: []*nitf.ImageSegment{mockImageSegment(nitf.CoordinatesGeographic, 0)},
		Texts:  []*nitf.TextSegment{{Identifier: "TEXT1"}},
	}
	transformer := NewTransformer(&util.RecordingLogContext{Quiet: true})
	first := model.NewRecord()
	second := model.NewRecord()

	assert.Nil(t, transformer.Transform(nitf.NewSegmentsFlow(file), first))
	assert.Nil(t, transformer.Transform(nitf.NewSegmentsFlow(file), second))

	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.Map(), second.Map())
}

func TestNewTransformer_NilContext(t *testing.T) {
	transformer := NewTransformer(nil)
	assert.NotNil(t, transformer.ctx)
}

func TestTransformFile_SharedTransformer(t *testing.T) {
	// Mock
	transformer := NewTransformer(nil)
	files := make([]*nitf.File, 8)
	for i := range files {
		files[i] = &nitf.File{
			Header: mockHeader("20140312071530"),
			Images: []*nitf.ImageSegment{mockImageSegment(nitf.CoordinatesGeographic, float64(i))},
		}
	}
	records := make([]*model.Record, len(files))
	errs := make([]error, len(files))

	// Tested code
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			records[i], errs[i] = transformer.TransformFile(files[i])
		}(i)
	}
	wg.Wait()

	// Asserts
	for i := range files {
		assert.Nil(t, errs[i])
		if assert.NotNil(t, records[i]) {
			location, _ := records[i].Attribute(model.Location)
			assert.Contains(t, location, "POLYGON((")
		}
	}
	assert.Equal(t, "POLYGON((5 5,5 6,6 6,6 5,5 5))", attribute(records[5], model.Location))
}
