package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

const headLength = 54

// Head holds the parsed contents of the head table (spec.md §4.3).
type Head struct {
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	IndexToLocFormat int16 // 0: short (uint16, x2), 1: long (uint32)
	GlyphDataFormat  int16
}

// loadHead parses the head table, grounded on muTrueType.h's
// mutt_LoadHead field layout.
func loadHead(b []byte) (*Head, Result) {
	if len(b) < headLength {
		return nil, ResultInvalidHeadLength
	}
	c := ttfbin.NewCursor(b)
	major, minor := c.U16(), c.U16()
	if major != 1 || minor != 0 {
		return nil, ResultInvalidHeadVersion
	}
	c.Skip(4) // fontRevision (Fixed)
	c.Skip(4) // checkSumAdjustment
	magic := c.U32()
	if magic != 0x5F0F3CF5 {
		return nil, ResultInvalidHeadMagicNumber
	}
	c.Skip(2) // flags
	h := &Head{}
	h.UnitsPerEm = c.U16()
	if h.UnitsPerEm < 16 || h.UnitsPerEm > 16384 {
		return nil, ResultInvalidHeadUnitsPerEm
	}
	c.Skip(8) // created
	c.Skip(8) // modified
	h.XMin = c.I16()
	h.YMin = c.I16()
	h.XMax = c.I16()
	h.YMax = c.I16()
	// Each bounding-box component is a signed FWord and must fall within
	// -16384..16383, independent of unitsPerEm.
	const minCoord, maxCoord = -16384, 16383
	if h.XMin < minCoord || h.XMin > maxCoord {
		return nil, ResultInvalidHeadXMinCoordinates
	}
	if h.YMin < minCoord || h.YMin > maxCoord {
		return nil, ResultInvalidHeadYMinCoordinates
	}
	if h.XMax < minCoord || h.XMax > maxCoord {
		return nil, ResultInvalidHeadXMaxCoordinates
	}
	if h.YMax < minCoord || h.YMax > maxCoord {
		return nil, ResultInvalidHeadYMaxCoordinates
	}
	if h.XMin > h.XMax {
		return nil, ResultInvalidHeadXMinMax
	}
	if h.YMin > h.YMax {
		return nil, ResultInvalidHeadYMinMax
	}
	c.Skip(2) // macStyle
	c.Skip(2) // lowestRecPPEM
	c.Skip(2) // fontDirectionHint
	h.IndexToLocFormat = c.I16()
	if h.IndexToLocFormat != 0 && h.IndexToLocFormat != 1 {
		return nil, ResultInvalidHeadIndexToLocFormat
	}
	h.GlyphDataFormat = c.I16()
	if h.GlyphDataFormat != 0 {
		return nil, ResultInvalidHeadGlyphDataFormat
	}
	return h, ResultSuccess
}
