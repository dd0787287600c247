package model

import "fmt"

// Catalog attribute names shared by every transformer writing into a Metacard
const (
	Title     = "title"
	Location  = "location"
	Modified  = "modified"
	Created   = "created"
	Effective = "effective"
	SourceID  = "source-id"

	MediaFormat        = "media.format"
	MediaFormatVersion = "media.format-version"
	MediaHeightPixels  = "media.height-pixels"
	MediaWidthPixels   = "media.width-pixels"
	MediaEncoding      = "media.encoding"
	MediaCompression   = "media.compression"

	SecurityClassification       = "security.classification"
	SecurityClassificationSystem = "security.classification-system"
	SecurityCodewords            = "security.codewords"

	ContactCreatorName  = "contact.creator-name"
	ContactCreatorPhone = "contact.creator-phone"

	DateTimeStart = "datetime.start"

	IsrTargetID          = "isr.target-id"
	IsrImageID           = "isr.image-id"
	IsrOriginalSource    = "isr.original-source"
	IsrCategory          = "isr.category"
	IsrMissionID         = "isr.mission-id"
	IsrPlatformID        = "isr.platform-id"
	IsrSensorType        = "isr.sensor-type"
	IsrSensorID          = "isr.sensor-id"
	IsrDwellLocation     = "isr.dwell-location"
	IsrTargetReportCount = "isr.target-report-count"

	DerivedResourceTitle = "resource.derived-title"
)

// AttributeType is the value type a catalog attribute holds
type AttributeType int

// Attribute types
const (
	String AttributeType = iota
	Integer
	Long
	Date
)

func (t AttributeType) String() string {
	switch t {
	case String:
		return "STRING"
	case Integer:
		return "INTEGER"
	case Long:
		return "LONG"
	case Date:
		return "DATE"
	}
	return fmt.Sprintf("AttributeType(%d)", int(t))
}
