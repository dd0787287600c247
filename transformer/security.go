package transformer

import (
	"errors"

	"github.com/lcrosenbu/alliance/nitf"
)

var errNoSecurityMetadata = errors.New("segment has no security metadata")

type securityReader func(*nitf.SecurityMetadata) interface{}

// secured builds an extractor reading from the security group of a segment
func secured[S any](metadata func(S) *nitf.SecurityMetadata, read securityReader) func(S) (interface{}, error) {
	return func(segment S) (interface{}, error) {
		m := metadata(segment)
		if m == nil {
			return nil, errNoSecurityMetadata
		}
		return read(m), nil
	}
}

func classification(m *nitf.SecurityMetadata) interface{}       { return m.Classification }
func classificationSystem(m *nitf.SecurityMetadata) interface{} { return m.ClassificationSystem }
func codewords(m *nitf.SecurityMetadata) interface{}            { return m.Codewords }
func controlAndHandling(m *nitf.SecurityMetadata) interface{}   { return m.ControlAndHandling }
func releaseInstructions(m *nitf.SecurityMetadata) interface{}  { return m.ReleaseInstructions }
func declassificationType(m *nitf.SecurityMetadata) interface{} { return m.DeclassificationType }
func declassificationDate(m *nitf.SecurityMetadata) interface{} { return m.DeclassificationDate }
func declassificationExemption(m *nitf.SecurityMetadata) interface{} {
	return m.DeclassificationExemption
}
func downgrade(m *nitf.SecurityMetadata) interface{}          { return m.Downgrade }
func downgradeDate(m *nitf.SecurityMetadata) interface{}      { return m.DowngradeDate }
func downgradeEvent(m *nitf.SecurityMetadata) interface{}     { return m.DowngradeEvent }
func classificationText(m *nitf.SecurityMetadata) interface{} { return m.ClassificationText }
func classificationAuthorityType(m *nitf.SecurityMetadata) interface{} {
	return m.ClassificationAuthorityType
}
func classificationAuthority(m *nitf.SecurityMetadata) interface{} {
	return m.ClassificationAuthority
}
func classificationReason(m *nitf.SecurityMetadata) interface{}  { return m.ClassificationReason }
func securitySourceDate(m *nitf.SecurityMetadata) interface{}    { return m.SecuritySourceDate }
func securityControlNumber(m *nitf.SecurityMetadata) interface{} { return m.SecurityControlNumber }

// nitfDate converts a NITF date/time field into an instant; an absent field
// has no value
func nitfDate(dt nitf.DateTime) (interface{}, error) {
	if dt.IsZero() {
		return nil, nil
	}
	t, err := dt.Time()
	if err != nil {
		return nil, err
	}
	return t, nil
}
