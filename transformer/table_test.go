package transformer

import (
	"testing"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/util"
	"github.com/stretchr/testify/assert"
)

func TestFieldTable_Sizes(t *testing.T) {
	assert.Equal(t, 28, HeaderFields.Len())
	assert.Equal(t, 9, ImageFields.Len())
	assert.Equal(t, 24, GraphicFields.Len())
	assert.Equal(t, 24, SymbolFields.Len())
	assert.Equal(t, 18, LabelFields.Len())
	assert.Equal(t, 23, TextFields.Len())
	assert.Equal(t, 4, AcftbFields.Len())
	assert.Equal(t, 2, MtirpbFields.Len())
	assert.Equal(t, 7, IndexedMtirpbFields.Len())
}

func TestFieldTable_Field(t *testing.T) {
	// Tested code
	fdt, foundFdt := HeaderFields.Field("FDT")
	tscatp, foundTscatp := TextFields.Field("TSCA TP")
	_, foundTypo := TextFields.Field("TSCATP")

	// Asserts
	assert.True(t, foundFdt)
	assert.Equal(t, "nitf.fileDateAndTime", fdt.LongName)
	assert.Equal(t, model.Date, fdt.Type)
	assert.True(t, foundTscatp)
	assert.Equal(t, "nitf.text.textClassificationAuthorityType", tscatp.LongName)
	assert.False(t, foundTypo)
}

func TestFieldTable_FieldsIsACopy(t *testing.T) {
	fields := ImageFields.Fields()
	fields[0].LongName = "changed"

	field, _ := ImageFields.Field("IDATIM")
	assert.Equal(t, model.DateTimeStart, field.LongName)
}

func TestNewFieldTable_DuplicateShortName(t *testing.T) {
	assert.Panics(t, func() {
		NewFieldTable(
			stringField("a", "X", constant("a")),
			stringField("b", "X", constant("b")),
		)
	})
}

func TestSegmentHandler_SkipsNilAndOverwrites(t *testing.T) {
	// Mock
	ctx := &util.RecordingLogContext{Quiet: true}
	table := NewFieldTable(
		stringField("shared", "A", constant("first")),
		stringField("missing", "B", constant(nil)),
		stringField("shared", "C", constant("second")),
	)
	record := model.NewRecord()

	// Tested code
	NewSegmentHandler(ctx, table).HandleSegment(record, struct{}{})

	// Asserts
	value, _ := record.Attribute("shared")
	assert.Equal(t, "second", value)
	_, found := record.Attribute("missing")
	assert.False(t, found)
	assert.Equal(t, 1, record.Len())
}

func TestSegmentHandler_NeverPanicsOnEmptySegments(t *testing.T) {
	ctx := &util.RecordingLogContext{Quiet: true}
	record := model.NewRecord()

	assert.NotPanics(t, func() {
		NewSegmentHandler(ctx, HeaderFields).HandleSegment(record, &nitf.Header{})
		NewSegmentHandler(ctx, ImageFields).HandleSegment(record, &nitf.ImageSegment{})
		NewSegmentHandler(ctx, GraphicFields).HandleSegment(record, &nitf.GraphicSegment{})
		NewSegmentHandler(ctx, SymbolFields).HandleSegment(record, &nitf.SymbolSegment{})
		NewSegmentHandler(ctx, LabelFields).HandleSegment(record, &nitf.LabelSegment{})
		NewSegmentHandler(ctx, TextFields).HandleSegment(record, &nitf.TextSegment{})
		NewSegmentHandler(ctx, AcftbFields).HandleSegment(record, nitf.TreGroup{})
	})

	// Missing security groups are reported field by field
	assert.NotEmpty(t, ctx.Messages(util.WARNING))
	fileType, found := record.Attribute(model.MediaFormat)
	assert.False(t, found, "%v", fileType)
	_, hasBackground := record.Attribute("nitf.fileBackgroundColor")
	assert.False(t, hasBackground)
}

func TestSegmentHandler_Idempotent(t *testing.T) {
	ctx := &util.RecordingLogContext{Quiet: true}
	segment := mockImageSegment(nitf.CoordinatesGeographic, 0)
	once := model.NewRecord()
	twice := model.NewRecord()
	handler := NewSegmentHandler(ctx, ImageFields)

	handler.HandleSegment(once, segment)
	handler.HandleSegment(twice, segment)
	handler.HandleSegment(twice, segment)

	assert.Equal(t, once.Names(), twice.Names())
	assert.Equal(t, once.Map(), twice.Map())
}
