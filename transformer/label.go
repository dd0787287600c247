package transformer

import (
	"errors"
	"fmt"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
)

func labelSecurity(s *nitf.LabelSegment) *nitf.SecurityMetadata { return s.Security }

func colour(c *nitf.RGBColour) (interface{}, error) {
	if c == nil {
		return nil, errors.New("colour is absent")
	}
	return c.String(), nil
}

// LabelFields is the field table of NITF 2.0 label segments
var LabelFields = NewFieldTable(
	stringField("nitf.label.filePartType", "LA", func(*nitf.LabelSegment) (interface{}, error) { return "LA", nil }),
	stringField("nitf.label.labelID", "LID", func(s *nitf.LabelSegment) (interface{}, error) { return s.Identifier, nil }),
	stringField("nitf.label.labelSecurityClassification", "LSCLAS", secured(labelSecurity, classification)),
	stringField("nitf.label.labelCodewords", "LSCODE", secured(labelSecurity, codewords)),
	stringField("nitf.label.labelControlandHandling", "LSCTLH", secured(labelSecurity, controlAndHandling)),
	stringField("nitf.label.labelReleasingInstructions", "LSREL", secured(labelSecurity, releaseInstructions)),
	stringField("nitf.label.labelClassificationAuthority", "LSCAUT", secured(labelSecurity, classificationAuthority)),
	stringField("nitf.label.labelSecurityControlNumber", "LSCTLN", secured(labelSecurity, securityControlNumber)),
	stringField("nitf.label.labelSecurityDowngrade", "LSDWNG", secured(labelSecurity, downgrade)),
	stringField("nitf.label.labelDowngradingEvent", "LSDEVT", secured(labelSecurity, downgradeEvent)),
	typedField("nitf.label.labelCellWidth", "LCW", model.Integer, func(s *nitf.LabelSegment) (interface{}, error) { return s.LabelCellWidth, nil }),
	typedField("nitf.label.labelCellHeight", "LCH", model.Integer, func(s *nitf.LabelSegment) (interface{}, error) { return s.LabelCellHeight, nil }),
	typedField("nitf.label.labelDisplayLevel", "LDLVL", model.Integer, func(s *nitf.LabelSegment) (interface{}, error) { return s.LabelDisplayLevel, nil }),
	typedField("nitf.label.attachmentLevel", "LALVL", model.Integer, func(s *nitf.LabelSegment) (interface{}, error) { return s.AttachmentLevel, nil }),
	stringField("nitf.label.labelLocation", "LLOC", func(s *nitf.LabelSegment) (interface{}, error) {
		return fmt.Sprintf("%d,%d", s.LabelLocationRow, s.LabelLocationColumn), nil
	}),
	stringField("nitf.label.labelTextColor", "LTC", func(s *nitf.LabelSegment) (interface{}, error) { return colour(s.LabelTextColour) }),
	stringField("nitf.label.labelBackgroundColor", "LBC", func(s *nitf.LabelSegment) (interface{}, error) { return colour(s.LabelBackgroundColour) }),
	typedField("nitf.label.extendedSubheaderDataLength", "LXSHDL", model.Integer, func(s *nitf.LabelSegment) (interface{}, error) {
		return s.ExtendedHeaderDataOverflow, nil
	}),
)
