package transformer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/util"
)

// TRE names and loops read by the GMTI tables
const (
	AcftbTre      = "ACFTB"
	MtirpbTre     = "MTIRPB"
	mtirpbTargets = "TARGETS"
	mtirpbPrefix  = "nitf.mtirpb."
)

// treValue reads a trimmed TRE field; blank values have no value
func treValue(key string) func(nitf.TreGroup) (interface{}, error) {
	return func(group nitf.TreGroup) (interface{}, error) {
		value, err := group.FieldValue(key)
		if err != nil {
			return nil, err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, nil
		}
		return value, nil
	}
}

// AcftbFields is the field table of the ACFTB aircraft information TRE
var AcftbFields = NewFieldTable(
	stringField(model.IsrMissionID, "AC_MSN_ID", treValue("AC_MSN_ID")),
	stringField(model.IsrPlatformID, "AC_TAIL_NO", treValue("AC_TAIL_NO")),
	stringField(model.IsrSensorType, "SENSOR_ID_TYPE", treValue("SENSOR_ID_TYPE")),
	stringField(model.IsrSensorID, "SENSOR_ID", treValue("SENSOR_ID")),
)

// MtirpbFields is the field table of the MTIRPB moving target report TRE
var MtirpbFields = NewFieldTable(
	stringField(model.IsrDwellLocation, "ACFT_LOC", treValue("ACFT_LOC")),
	stringField(model.IsrTargetReportCount, "NO_VALID_TARGETS", treValue("NO_VALID_TARGETS")),
)

// targetClassificationCategories maps TGT_CAT codes onto their names
var targetClassificationCategories = map[string]string{
	"H": "Helicopter",
	"T": "Tracked Vehicle",
	"W": "Wheeled Vehicle",
	"U": "Unknown Target Type",
}

// targetClassificationCategory names the TGT_CAT code of a target; a target
// without one is of unknown type
func targetClassificationCategory(group nitf.TreGroup) (interface{}, error) {
	value, err := treValue("TGT_CAT")(group)
	var missing nitf.ErrNoSuchTreEntry
	if err != nil && !errors.As(err, &missing) {
		return nil, err
	}
	if value == nil {
		return targetClassificationCategories["U"], nil
	}
	name, ok := targetClassificationCategories[value.(string)]
	if !ok {
		return nil, fmt.Errorf("unknown target classification category `%s`", value)
	}
	return name, nil
}

// IndexedMtirpbFields is the field table applied to each target of an MTIRPB
// TRE. Long names are relative to the nitf.mtirpb. prefix.
var IndexedMtirpbFields = NewFieldTable(
	stringField("targetClassificationCategory", "TGT_CAT", targetClassificationCategory),
	stringField("targetAmplitude", "TGT_AMPLITUDE", treValue("TGT_AMPLITUDE")),
	stringField("targetHeading", "TGT_HEADING", treValue("TGT_HEADING")),
	stringField("targetGroundSpeed", "TGT_SPEED", treValue("TGT_SPEED")),
	stringField("targetRadialVelocity", "TGT_VEL_R", treValue("TGT_VEL_R")),
	stringField("targetLocationAccuracy", "TGT_LOC_ACCY", treValue("TGT_LOC_ACCY")),
	stringField(model.Location, "TGT_LOC", treValue("TGT_LOC")),
)

// IndexedMtirpbAttribute returns the record key of an indexed MTIRPB field
func IndexedMtirpbAttribute(longName string) string {
	return mtirpbPrefix + longName
}

// treHandler writes the GMTI TRE attributes of a header or image segment
type treHandler struct {
	ctx    util.LogContext
	acftb  *SegmentHandler[nitf.TreGroup]
	mtirpb *SegmentHandler[nitf.TreGroup]
}

func newTreHandler(ctx util.LogContext) *treHandler {
	return &treHandler{
		ctx:    ctx,
		acftb:  NewSegmentHandler(ctx, AcftbFields),
		mtirpb: NewSegmentHandler(ctx, MtirpbFields),
	}
}

func (h *treHandler) handleTres(record model.Metacard, tres []nitf.Tre) {
	if tre, ok := nitf.FindTre(tres, AcftbTre); ok {
		h.acftb.HandleSegment(record, tre.TreGroup)
	}
	if tre, ok := nitf.FindTre(tres, MtirpbTre); ok {
		h.mtirpb.HandleSegment(record, tre.TreGroup)
		h.handleTargets(record, tre.TreGroup)
	}
}

// handleTargets collects each indexed field over every target, in target
// order, and writes the values as one comma separated attribute
func (h *treHandler) handleTargets(record model.Metacard, mtirpb nitf.TreGroup) {
	targets, err := mtirpb.Groups(mtirpbTargets)
	if err != nil {
		util.LogInfo(h.ctx, fmt.Sprintf("MTIRPB has no target loop: %v", err))
		return
	}
	for _, field := range IndexedMtirpbFields.fields {
		var values []string
		for _, target := range targets {
			if _, value := field.Apply(h.ctx, target); value != nil {
				values = append(values, value.(string))
			}
		}
		if len(values) > 0 {
			record.SetAttribute(IndexedMtirpbAttribute(field.LongName), strings.Join(values, ","))
		}
	}
}
