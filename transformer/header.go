package transformer

import (
	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
)

func fileSecurity(header *nitf.Header) *nitf.SecurityMetadata {
	if header.FileSecurity == nil {
		return nil
	}
	return &header.FileSecurity.SecurityMetadata
}

func fileCopies(read func(*nitf.FileSecurityMetadata) interface{}) func(*nitf.Header) (interface{}, error) {
	return func(header *nitf.Header) (interface{}, error) {
		if header.FileSecurity == nil {
			return nil, errNoSecurityMetadata
		}
		return read(header.FileSecurity), nil
	}
}

// HeaderFields is the field table of the NITF file header
var HeaderFields = NewFieldTable(
	stringField(model.MediaFormat, "FHDR", func(h *nitf.Header) (interface{}, error) { return h.FileType, nil }),
	stringField(model.MediaFormatVersion, "FVER", func(h *nitf.Header) (interface{}, error) { return h.FileType, nil }),
	typedField("nitf.complexityLevel", "CLEVEL", model.Integer, func(h *nitf.Header) (interface{}, error) { return h.ComplexityLevel, nil }),
	stringField("nitf.standardType", "STYPE", func(h *nitf.Header) (interface{}, error) { return h.StandardType, nil }),
	stringField(model.SourceID, "OSTAID", func(h *nitf.Header) (interface{}, error) { return h.OriginatingStationID, nil }),
	typedField("nitf.fileDateAndTime", "FDT", model.Date, func(h *nitf.Header) (interface{}, error) { return nitfDate(h.FileDateTime) }),
	stringField(model.Title, "FTITLE", func(h *nitf.Header) (interface{}, error) { return h.FileTitle, nil }),
	stringField(model.SecurityClassification, "FSCLAS", secured(fileSecurity, classification)),
	stringField(model.SecurityClassificationSystem, "FSCLSY", secured(fileSecurity, classificationSystem)),
	stringField("nitf.fileCodewords", "FSCODE", secured(fileSecurity, codewords)),
	stringField(model.SecurityCodewords, "FSCTLH", secured(fileSecurity, controlAndHandling)),
	stringField("nitf.fileReleasingInstructions", "FSREL", secured(fileSecurity, releaseInstructions)),
	stringField("nitf.fileDeclassificationType", "FSDCTP", secured(fileSecurity, declassificationType)),
	stringField("nitf.fileDeclassificationDate", "FSDCDT", secured(fileSecurity, declassificationDate)),
	stringField("nitf.fileDeclassificationExemption", "FSDCXM", secured(fileSecurity, declassificationExemption)),
	stringField("nitf.fileDowngrade", "FSDG", secured(fileSecurity, downgrade)),
	stringField("nitf.fileDowngradeDate", "FSDGDT", secured(fileSecurity, downgradeDate)),
	stringField("nitf.fileClassificationText", "FSCLTX", secured(fileSecurity, classificationText)),
	stringField("nitf.fileClassificationAuthorityType", "FSCATP", secured(fileSecurity, classificationAuthorityType)),
	stringField("nitf.fileClassificationAuthority", "FSCAUT", secured(fileSecurity, classificationAuthority)),
	stringField("nitf.fileClassificationReason", "FSCRSN", secured(fileSecurity, classificationReason)),
	stringField("nitf.fileSecuritySourceDate", "FSSRDT", secured(fileSecurity, securitySourceDate)),
	stringField("nitf.fileSecurityControlNumber", "FSCTLN", secured(fileSecurity, securityControlNumber)),
	stringField("nitf.fileCopyNumber", "FSCOP", fileCopies(func(m *nitf.FileSecurityMetadata) interface{} { return m.FileCopyNumber })),
	stringField("nitf.fileNumberOfCopies", "FSCPYS", fileCopies(func(m *nitf.FileSecurityMetadata) interface{} { return m.FileNumberOfCopies })),
	stringField("nitf.fileBackgroundColor", "FBKGC", func(h *nitf.Header) (interface{}, error) {
		if h.FileBackgroundColour == nil {
			return nil, nil
		}
		return h.FileBackgroundColour.String(), nil
	}),
	stringField(model.ContactCreatorName, "ONAME", func(h *nitf.Header) (interface{}, error) { return h.OriginatorsName, nil }),
	stringField(model.ContactCreatorPhone, "OPHONE", func(h *nitf.Header) (interface{}, error) { return h.OriginatorsPhoneNumber, nil }),
)
