package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

// maxpLength is the size of the version 1.0 maxp table; mutt requires
// version 1.0 (version 0.5, CFF-only, has no maxProfile fields and is out
// of scope since this package never reads CFF outlines).
const maxpLength = 32

// Maxp holds the parsed contents of the maxp table (spec.md §4.3): the
// glyph count and the worst-case resource bounds every glyf decode is
// checked against.
type Maxp struct {
	NumGlyphs             uint16
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// loadMaxp parses the maxp table, grounded on muTrueType.h's
// mutt_LoadMaxp field layout and spec.md §4.3's validation rules.
func loadMaxp(b []byte) (*Maxp, Result) {
	if len(b) < maxpLength {
		return nil, ResultInvalidMaxpLength
	}
	c := ttfbin.NewCursor(b)
	if c.U32() != 0x00010000 {
		return nil, ResultInvalidMaxpVersion
	}
	m := &Maxp{}
	m.NumGlyphs = c.U16()
	m.MaxPoints = c.U16()
	m.MaxContours = c.U16()
	m.MaxCompositePoints = c.U16()
	m.MaxCompositeContours = c.U16()
	m.MaxZones = c.U16()
	if m.MaxZones != 1 && m.MaxZones != 2 {
		return nil, ResultInvalidMaxpMaxZones
	}
	m.MaxTwilightPoints = c.U16()
	m.MaxStorage = c.U16()
	m.MaxFunctionDefs = c.U16()
	m.MaxInstructionDefs = c.U16()
	m.MaxStackElements = c.U16()
	m.MaxSizeOfInstructions = c.U16()
	m.MaxComponentElements = c.U16()
	m.MaxComponentDepth = c.U16()
	if m.NumGlyphs < 2 {
		return nil, ResultInvalidMaxpNumGlyphs
	}
	return m, ResultSuccess
}
