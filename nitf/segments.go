package nitf

// Header is the decoded NITF file header
type Header struct {
	FileType               FileType              `json:"fileType" yaml:"fileType"`
	ComplexityLevel        int                   `json:"complexityLevel" yaml:"complexityLevel"`
	StandardType           string                `json:"standardType" yaml:"standardType"`
	OriginatingStationID   string                `json:"originatingStationId" yaml:"originatingStationId"`
	FileDateTime           DateTime              `json:"fileDateTime" yaml:"fileDateTime"`
	FileTitle              string                `json:"fileTitle" yaml:"fileTitle"`
	FileSecurity           *FileSecurityMetadata `json:"fileSecurity" yaml:"fileSecurity"`
	FileBackgroundColour   *RGBColour            `json:"fileBackgroundColour" yaml:"fileBackgroundColour"`
	OriginatorsName        string                `json:"originatorsName" yaml:"originatorsName"`
	OriginatorsPhoneNumber string                `json:"originatorsPhoneNumber" yaml:"originatorsPhoneNumber"`
	Tres                   []Tre                 `json:"tres" yaml:"tres"`
}

// Coordinate is one image corner in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// ImageCoordinates are the four IGEOLO corners of an image, in the order the
// subheader stores them
type ImageCoordinates struct {
	Coordinate00           Coordinate `json:"coordinate00" yaml:"coordinate00"`
	Coordinate0MaxCol      Coordinate `json:"coordinate0MaxCol" yaml:"coordinate0MaxCol"`
	CoordinateMaxRowMaxCol Coordinate `json:"coordinateMaxRowMaxCol" yaml:"coordinateMaxRowMaxCol"`
	CoordinateMaxRow0      Coordinate `json:"coordinateMaxRow0" yaml:"coordinateMaxRow0"`
}

// ImageSegment is a decoded image subheader
type ImageSegment struct {
	Identifier                     string                    `json:"identifier" yaml:"identifier"`
	ImageDateTime                  DateTime                  `json:"imageDateTime" yaml:"imageDateTime"`
	ImageTargetID                  *TextField                `json:"imageTargetId" yaml:"imageTargetId"`
	ImageIdentifier2               string                    `json:"imageIdentifier2" yaml:"imageIdentifier2"`
	ImageSource                    string                    `json:"imageSource" yaml:"imageSource"`
	NumberOfRows                   int64                     `json:"numberOfRows" yaml:"numberOfRows"`
	NumberOfColumns                int64                     `json:"numberOfColumns" yaml:"numberOfColumns"`
	ImageRepresentation            ImageRepresentation       `json:"imageRepresentation" yaml:"imageRepresentation"`
	ImageCategory                  ImageCategory             `json:"imageCategory" yaml:"imageCategory"`
	ImageCompression               ImageCompression          `json:"imageCompression" yaml:"imageCompression"`
	ImageCoordinatesRepresentation CoordinatesRepresentation `json:"imageCoordinatesRepresentation" yaml:"imageCoordinatesRepresentation"`
	ImageCoordinates               *ImageCoordinates         `json:"imageCoordinates" yaml:"imageCoordinates"`
	Security                       *SecurityMetadata         `json:"security" yaml:"security"`
	Tres                           []Tre                     `json:"tres" yaml:"tres"`
}

// GraphicSegment is a decoded NITF 2.1 graphic subheader
type GraphicSegment struct {
	Identifier                 string            `json:"identifier" yaml:"identifier"`
	GraphicName                string            `json:"graphicName" yaml:"graphicName"`
	Security                   *SecurityMetadata `json:"security" yaml:"security"`
	GraphicDisplayLevel        int               `json:"graphicDisplayLevel" yaml:"graphicDisplayLevel"`
	AttachmentLevel            int               `json:"attachmentLevel" yaml:"attachmentLevel"`
	GraphicLocationRow         int               `json:"graphicLocationRow" yaml:"graphicLocationRow"`
	GraphicLocationColumn      int               `json:"graphicLocationColumn" yaml:"graphicLocationColumn"`
	GraphicColour              GraphicColour     `json:"graphicColour" yaml:"graphicColour"`
	ExtendedHeaderDataOverflow int               `json:"extendedHeaderDataOverflow" yaml:"extendedHeaderDataOverflow"`
}

// SymbolSegment is a decoded NITF 2.0 symbol subheader
type SymbolSegment struct {
	Identifier                 string            `json:"identifier" yaml:"identifier"`
	SymbolName                 string            `json:"symbolName" yaml:"symbolName"`
	Security                   *SecurityMetadata `json:"security" yaml:"security"`
	SymbolType                 SymbolType        `json:"symbolType" yaml:"symbolType"`
	NumberOfLinesPerSymbol     int               `json:"numberOfLinesPerSymbol" yaml:"numberOfLinesPerSymbol"`
	NumberOfPixelsPerLine      int               `json:"numberOfPixelsPerLine" yaml:"numberOfPixelsPerLine"`
	LineWidth                  int               `json:"lineWidth" yaml:"lineWidth"`
	NumberOfBitsPerPixel       int               `json:"numberOfBitsPerPixel" yaml:"numberOfBitsPerPixel"`
	SymbolDisplayLevel         int               `json:"symbolDisplayLevel" yaml:"symbolDisplayLevel"`
	AttachmentLevel            int               `json:"attachmentLevel" yaml:"attachmentLevel"`
	SymbolLocationRow          int               `json:"symbolLocationRow" yaml:"symbolLocationRow"`
	SymbolLocationColumn       int               `json:"symbolLocationColumn" yaml:"symbolLocationColumn"`
	SymbolLocation2Row         int               `json:"symbolLocation2Row" yaml:"symbolLocation2Row"`
	SymbolLocation2Column      int               `json:"symbolLocation2Column" yaml:"symbolLocation2Column"`
	SymbolColour               SymbolColour      `json:"symbolColour" yaml:"symbolColour"`
	SymbolNumber               string            `json:"symbolNumber" yaml:"symbolNumber"`
	SymbolRotation             int               `json:"symbolRotation" yaml:"symbolRotation"`
	ExtendedHeaderDataOverflow int               `json:"extendedHeaderDataOverflow" yaml:"extendedHeaderDataOverflow"`
}

// LabelSegment is a decoded NITF 2.0 label subheader
type LabelSegment struct {
	Identifier                 string            `json:"identifier" yaml:"identifier"`
	Security                   *SecurityMetadata `json:"security" yaml:"security"`
	LabelCellWidth             int               `json:"labelCellWidth" yaml:"labelCellWidth"`
	LabelCellHeight            int               `json:"labelCellHeight" yaml:"labelCellHeight"`
	LabelDisplayLevel          int               `json:"labelDisplayLevel" yaml:"labelDisplayLevel"`
	AttachmentLevel            int               `json:"attachmentLevel" yaml:"attachmentLevel"`
	LabelLocationRow           int               `json:"labelLocationRow" yaml:"labelLocationRow"`
	LabelLocationColumn        int               `json:"labelLocationColumn" yaml:"labelLocationColumn"`
	LabelTextColour            *RGBColour        `json:"labelTextColour" yaml:"labelTextColour"`
	LabelBackgroundColour      *RGBColour        `json:"labelBackgroundColour" yaml:"labelBackgroundColour"`
	ExtendedHeaderDataOverflow int               `json:"extendedHeaderDataOverflow" yaml:"extendedHeaderDataOverflow"`
}

// TextSegment is a decoded text subheader
type TextSegment struct {
	Identifier                 string            `json:"identifier" yaml:"identifier"`
	AttachmentLevel            int               `json:"attachmentLevel" yaml:"attachmentLevel"`
	TextDateTime               DateTime          `json:"textDateTime" yaml:"textDateTime"`
	TextTitle                  string            `json:"textTitle" yaml:"textTitle"`
	Security                   *SecurityMetadata `json:"security" yaml:"security"`
	TextFormat                 TextFormat        `json:"textFormat" yaml:"textFormat"`
	ExtendedHeaderDataOverflow int               `json:"extendedHeaderDataOverflow" yaml:"extendedHeaderDataOverflow"`
}
