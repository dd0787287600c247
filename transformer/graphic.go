package transformer

import (
	"fmt"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
)

func graphicSecurity(s *nitf.GraphicSegment) *nitf.SecurityMetadata { return s.Security }

// GraphicFields is the field table of NITF 2.1 graphic segments
var GraphicFields = NewFieldTable(
	stringField("nitf.graphic.filePartType", "SY", func(*nitf.GraphicSegment) (interface{}, error) { return "SY", nil }),
	stringField("nitf.graphic.graphicIdentifier", "SID", func(s *nitf.GraphicSegment) (interface{}, error) { return s.Identifier, nil }),
	stringField("nitf.graphic.graphicName", "SNAME", func(s *nitf.GraphicSegment) (interface{}, error) { return s.GraphicName, nil }),
	stringField("nitf.graphic.graphicSecurityClassification", "SSCLAS", secured(graphicSecurity, classification)),
	stringField("nitf.graphic.graphicClassificationSecuritySystem", "SSCLSY", secured(graphicSecurity, classificationSystem)),
	stringField("nitf.graphic.graphicCodewords", "SSCODE", secured(graphicSecurity, codewords)),
	stringField("nitf.graphic.graphicControlAndHandling", "SSCTLH", secured(graphicSecurity, controlAndHandling)),
	stringField("nitf.graphic.graphicReleasingInstructions", "SSREL", secured(graphicSecurity, releaseInstructions)),
	stringField("nitf.graphic.graphicDeclassificationType", "SSDCTP", secured(graphicSecurity, declassificationType)),
	stringField("nitf.graphic.graphicDeclassificationDate", "SSDCDT", secured(graphicSecurity, declassificationDate)),
	stringField("nitf.graphic.graphicDeclassificationExemption", "SSDCXM", secured(graphicSecurity, declassificationExemption)),
	stringField("nitf.graphic.graphicDowngrade", "SSDG", secured(graphicSecurity, downgrade)),
	stringField("nitf.graphic.graphicDowngradeDate", "SSDGDT", secured(graphicSecurity, downgradeDate)),
	stringField("nitf.graphic.graphicClassificationText", "SSCLTX", secured(graphicSecurity, classificationText)),
	stringField("nitf.graphic.graphicClassificationAuthorityType", "SSCATP", secured(graphicSecurity, classificationAuthorityType)),
	stringField("nitf.graphic.graphicClassificationAuthority", "SSCAUT", secured(graphicSecurity, classificationAuthority)),
	stringField("nitf.graphic.graphicClassificationReason", "SSCRSN", secured(graphicSecurity, classificationReason)),
	stringField("nitf.graphic.graphicSecuritySourceDate", "SSSRDT", secured(graphicSecurity, securitySourceDate)),
	stringField("nitf.graphic.graphicSecurityControlNumber", "SSCTLN", secured(graphicSecurity, securityControlNumber)),
	typedField("nitf.graphic.graphicDisplayLevel", "SDLVL", model.Integer, func(s *nitf.GraphicSegment) (interface{}, error) { return s.GraphicDisplayLevel, nil }),
	typedField("nitf.graphic.graphicAttachmentLevel", "SALVL", model.Integer, func(s *nitf.GraphicSegment) (interface{}, error) { return s.AttachmentLevel, nil }),
	stringField("nitf.graphic.graphicLocation", "SLOC", func(s *nitf.GraphicSegment) (interface{}, error) {
		return fmt.Sprintf("%d,%d", s.GraphicLocationRow, s.GraphicLocationColumn), nil
	}),
	stringField("nitf.graphic.graphicColor", "SCOLOR", func(s *nitf.GraphicSegment) (interface{}, error) { return s.GraphicColour, nil }),
	typedField("nitf.graphic.graphicExtendedSubheaderDataLength", "SXSHDL", model.Integer, func(s *nitf.GraphicSegment) (interface{}, error) {
		return s.ExtendedHeaderDataOverflow, nil
	}),
)
