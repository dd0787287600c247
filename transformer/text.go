package transformer

import (
	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
)

func textSecurity(s *nitf.TextSegment) *nitf.SecurityMetadata { return s.Security }

// TextFields is the field table of text segments.
//
// TSCLAS is filled from the classification system, and the authority type
// keeps the short name "TSCA TP".
var TextFields = NewFieldTable(
	stringField("nitf.text.filePartType", "TE", func(*nitf.TextSegment) (interface{}, error) { return "TE", nil }),
	stringField("nitf.text.textIdentifier", "TEXTID", func(s *nitf.TextSegment) (interface{}, error) { return s.Identifier, nil }),
	typedField("nitf.text.textAttachmentLevel", "TXTALVL", model.Integer, func(s *nitf.TextSegment) (interface{}, error) { return s.AttachmentLevel, nil }),
	typedField("nitf.text.textDateAndTime", "TXTDT", model.Date, func(s *nitf.TextSegment) (interface{}, error) { return nitfDate(s.TextDateTime) }),
	stringField("nitf.text.textTitle", "TXTITL", func(s *nitf.TextSegment) (interface{}, error) { return s.TextTitle, nil }),
	stringField("nitf.text.textSecurityClassification", "TSCLAS", secured(textSecurity, classificationSystem)),
	stringField("nitf.text.textClassificationSecuritySystem", "TSCLSY", secured(textSecurity, classificationSystem)),
	stringField("nitf.text.textCodewords", "TSCODE", secured(textSecurity, codewords)),
	stringField("nitf.text.textControlandHandling", "TSCTLH", secured(textSecurity, controlAndHandling)),
	stringField("nitf.text.textReleasingInstructions", "TSREL", secured(textSecurity, releaseInstructions)),
	stringField("nitf.text.textDeclassificationType", "TSDCTP", secured(textSecurity, declassificationType)),
	stringField("nitf.text.textDeclassificationDate", "TSDCDT", secured(textSecurity, declassificationDate)),
	stringField("nitf.text.textDeclassificationExemption", "TSDCXM", secured(textSecurity, declassificationExemption)),
	stringField("nitf.text.textDowngrade", "TSDG", secured(textSecurity, downgrade)),
	stringField("nitf.text.textDowngradeDate", "TSDGDT", secured(textSecurity, downgradeDate)),
	stringField("nitf.text.textClassificationText", "TSCLTX", secured(textSecurity, classificationText)),
	stringField("nitf.text.textClassificationAuthorityType", "TSCA TP", secured(textSecurity, classificationAuthorityType)),
	stringField("nitf.text.textClassificationAuthority", "TSCAUT", secured(textSecurity, classificationAuthority)),
	stringField("nitf.text.textClassificationReason", "TSCRSN", secured(textSecurity, classificationReason)),
	stringField("nitf.text.textSecuritySourceDate", "TSSRDT", secured(textSecurity, securitySourceDate)),
	stringField("nitf.text.textSecurityControlNumber", "TSCTLN", secured(textSecurity, securityControlNumber)),
	stringField("nitf.text.textFormat", "TXTFMT", func(s *nitf.TextSegment) (interface{}, error) { return s.TextFormat, nil }),
	typedField("nitf.text.textExtendedSubheaderDataLength", "TXSHDL", model.Integer, func(s *nitf.TextSegment) (interface{}, error) {
		return s.ExtendedHeaderDataOverflow, nil
	}),
)
