package transformer

import (
	"fmt"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
)

func symbolSecurity(s *nitf.SymbolSegment) *nitf.SecurityMetadata { return s.Security }

// SymbolFields is the field table of NITF 2.0 symbol segments
var SymbolFields = NewFieldTable(
	stringField("nitf.symbol.filePartType", "SY", func(*nitf.SymbolSegment) (interface{}, error) { return "SY", nil }),
	stringField("nitf.symbol.symbolID", "SID", func(s *nitf.SymbolSegment) (interface{}, error) { return s.Identifier, nil }),
	stringField("nitf.symbol.symbolName", "SNAME", func(s *nitf.SymbolSegment) (interface{}, error) { return s.SymbolName, nil }),
	stringField("nitf.symbol.symbolSecurityClassification", "SSCLAS", secured(symbolSecurity, classification)),
	stringField("nitf.symbol.symbolCodewords", "SSCODE", secured(symbolSecurity, codewords)),
	stringField("nitf.symbol.symbolControlandHandling", "SSCTLH", secured(symbolSecurity, controlAndHandling)),
	stringField("nitf.symbol.symbolReleasingInstructions", "SSREL", secured(symbolSecurity, releaseInstructions)),
	stringField("nitf.symbol.symbolClassificationAuthority", "SSCAUT", secured(symbolSecurity, classificationAuthority)),
	stringField("nitf.symbol.symbolSecurityControlNumber", "SSCTLN", secured(symbolSecurity, securityControlNumber)),
	stringField("nitf.symbol.symbolSecurityDowngrade", "SSDWNG", secured(symbolSecurity, downgrade)),
	stringField("nitf.symbol.symbolDowngradingEvent", "SSDEVT", secured(symbolSecurity, downgradeEvent)),
	stringField("nitf.symbol.symbolType", "STYPE", func(s *nitf.SymbolSegment) (interface{}, error) { return s.SymbolType, nil }),
	typedField("nitf.symbol.numberOfLinesPerSymbol", "NLIPS", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.NumberOfLinesPerSymbol, nil }),
	typedField("nitf.symbol.numberOfPixelsPerLine", "NPIXPL", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.NumberOfPixelsPerLine, nil }),
	typedField("nitf.symbol.lineWidth", "NWDTH", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.LineWidth, nil }),
	typedField("nitf.symbol.numberOfBitsPerPixel", "NBPP", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.NumberOfBitsPerPixel, nil }),
	typedField("nitf.symbol.displayLevel", "SDLVL", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.SymbolDisplayLevel, nil }),
	typedField("nitf.symbol.attachmentLevel", "SALVL", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.AttachmentLevel, nil }),
	stringField("nitf.symbol.symbolLocation", "SLOC", func(s *nitf.SymbolSegment) (interface{}, error) {
		return fmt.Sprintf("%d,%d", s.SymbolLocationRow, s.SymbolLocationColumn), nil
	}),
	stringField("nitf.symbol.secondSymbolLocation", "SLOC2", func(s *nitf.SymbolSegment) (interface{}, error) {
		return fmt.Sprintf("%d,%d", s.SymbolLocation2Row, s.SymbolLocation2Column), nil
	}),
	stringField("nitf.symbol.symbolColor", "SCOLOR", func(s *nitf.SymbolSegment) (interface{}, error) { return s.SymbolColour, nil }),
	stringField("nitf.symbol.symbolNumber", "SNUM", func(s *nitf.SymbolSegment) (interface{}, error) { return s.SymbolNumber, nil }),
	typedField("nitf.symbol.symbolRotation", "SROT", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) { return s.SymbolRotation, nil }),
	typedField("nitf.symbol.extendedSubheaderDataLength", "SXSHDL", model.Integer, func(s *nitf.SymbolSegment) (interface{}, error) {
		return s.ExtendedHeaderDataOverflow, nil
	}),
)
