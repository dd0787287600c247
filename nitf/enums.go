package nitf

// Enumerated NITF field values are carried by name, the way the decoder
// reports them. The zero value of each type means the field was absent.

import "strings"

// FileType is the NITF/NSIF profile and version of a file (FHDR/FVER)
type FileType string

// File types
const (
	NitfTwoZero FileType = "NITF_TWO_ZERO"
	NitfTwoOne  FileType = "NITF_TWO_ONE"
	NsifOneZero FileType = "NSIF_ONE_ZERO"
)

// Name returns the name of the file type
func (t FileType) Name() string { return string(t) }

// SecurityClassification is a segment security classification (xSCLAS)
type SecurityClassification string

// Security classifications
const (
	Unclassified SecurityClassification = "UNCLASSIFIED"
	Restricted   SecurityClassification = "RESTRICTED"
	Confidential SecurityClassification = "CONFIDENTIAL"
	Secret       SecurityClassification = "SECRET"
	TopSecret    SecurityClassification = "TOP_SECRET"
)

// Name returns the name of the classification
func (c SecurityClassification) Name() string { return string(c) }

// ImageRepresentation is the IREP field of an image segment
type ImageRepresentation string

// Image representations
const (
	Monochrome    ImageRepresentation = "MONOCHROME"
	RGBTrueColour ImageRepresentation = "RGBTRUECOLOUR"
	RGBLUT        ImageRepresentation = "RGBLUT"
	Multiband     ImageRepresentation = "MULTIBAND"
	NoDisplay     ImageRepresentation = "NODISPLAY"
	YCbCr601      ImageRepresentation = "YCbCr601"
)

// Name returns the name of the representation
func (r ImageRepresentation) Name() string { return string(r) }

// ImageCategory is the ICAT field of an image segment
type ImageCategory string

// Image categories
const (
	CategoryVisual        ImageCategory = "VISUAL"
	CategoryInfrared      ImageCategory = "INFRARED"
	CategoryMultispectral ImageCategory = "MULTISPECTRAL"
	CategorySAR           ImageCategory = "SYNTHETIC_APERTURE_RADAR"
	CategoryMap           ImageCategory = "MAP"
)

// Name returns the name of the category
func (c ImageCategory) Name() string { return string(c) }

// ImageCompression is the IC field of an image segment
type ImageCompression string

// Image compressions
const (
	NotCompressed ImageCompression = "NOTCOMPRESSED"
	JPEG          ImageCompression = "JPEG"
	JPEG2000      ImageCompression = "JPEG2000"
	BiLevel       ImageCompression = "BILEVEL"
)

// Name returns the name of the compression
func (c ImageCompression) Name() string { return string(c) }

// CoordinatesRepresentation is the ICORDS field of an image segment
type CoordinatesRepresentation string

// Coordinate representations
const (
	CoordinatesNone           CoordinatesRepresentation = "NONE"
	CoordinatesUTMNorth       CoordinatesRepresentation = "UTMUPSNORTH"
	CoordinatesUTMSouth       CoordinatesRepresentation = "UTMUPSSOUTH"
	CoordinatesMGRS           CoordinatesRepresentation = "MGRS"
	CoordinatesGeographic     CoordinatesRepresentation = "GEOGRAPHIC"
	CoordinatesDecimalDegrees CoordinatesRepresentation = "DECIMALDEGREES"
	CoordinatesGeocentric     CoordinatesRepresentation = "GEOCENTRIC"
)

// coordinatesCodes maps the ICORDS field codes onto their representations
var coordinatesCodes = map[string]CoordinatesRepresentation{
	"":  CoordinatesNone,
	"N": CoordinatesUTMNorth,
	"S": CoordinatesUTMSouth,
	"U": CoordinatesMGRS,
	"G": CoordinatesGeographic,
	"D": CoordinatesDecimalDegrees,
	"C": CoordinatesGeocentric,
}

// ParseCoordinatesRepresentation reads either an ICORDS code ("G", "D", " "...)
// or a representation name
func ParseCoordinatesRepresentation(value string) CoordinatesRepresentation {
	value = strings.TrimSpace(value)
	if r, ok := coordinatesCodes[strings.ToUpper(value)]; ok {
		return r
	}
	return CoordinatesRepresentation(strings.ToUpper(value))
}

// UnmarshalText implements encoding.TextUnmarshaler, used by both the JSON
// and YAML document decoders
func (r *CoordinatesRepresentation) UnmarshalText(text []byte) error {
	*r = ParseCoordinatesRepresentation(string(text))
	return nil
}

// Name returns the name of the representation
func (r CoordinatesRepresentation) Name() string { return string(r) }

// IsNone reports whether the segment declares no coordinates; an empty
// value counts as none
func (r CoordinatesRepresentation) IsNone() bool {
	return strings.TrimSpace(string(r)) == "" || r == CoordinatesNone
}

// GraphicColour is the SCOLOR field of a graphic segment
type GraphicColour string

// Graphic colours
const (
	GraphicColourColour     GraphicColour = "COLOUR"
	GraphicColourMonochrome GraphicColour = "MONOCHROME"
)

// Name returns the name of the colour
func (c GraphicColour) Name() string { return string(c) }

// SymbolType is the STYPE field of a NITF 2.0 symbol segment
type SymbolType string

// Symbol types
const (
	SymbolBitmap SymbolType = "BITMAP"
	SymbolCGM    SymbolType = "CGM"
	SymbolObject SymbolType = "OBJECT"
)

// Name returns the name of the symbol type
func (t SymbolType) Name() string { return string(t) }

// SymbolColour is the SCOLOR field of a NITF 2.0 symbol segment
type SymbolColour string

// Symbol colours
const (
	SymbolColourNotApplicable SymbolColour = "NOT_APPLICABLE"
	SymbolColourBlack         SymbolColour = "BLACK"
	SymbolColourRed           SymbolColour = "RED"
	SymbolColourGreen         SymbolColour = "GREEN"
	SymbolColourBlue          SymbolColour = "BLUE"
)

// Name returns the name of the colour
func (c SymbolColour) Name() string { return string(c) }

// TextFormat is the TXTFMT field of a text segment
type TextFormat string

// Text formats
const (
	TextBasicCharacterSet    TextFormat = "BASICCHARACTERSET"
	TextExtendedCharacterSet TextFormat = "EXTENDEDCHARACTERSET"
	TextLabelString          TextFormat = "LABELSTRING"
	TextUSMTF                TextFormat = "USMTF"
	TextUTF8Subset           TextFormat = "UTF8SUBSET"
)

// Name returns the name of the text format
func (f TextFormat) Name() string { return string(f) }
