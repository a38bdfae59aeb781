package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

const hheaLength = 36

// Hhea holds the parsed contents of the horizontal header table
// (spec.md §4.3). NumberOfHMetrics bounds the long-metric run in hmtx and
// must not exceed maxp.numGlyphs.
type Hhea struct {
	Ascender, Descender, LineGap int16
	AdvanceWidthMax              uint16
	MinLeftSideBearing           int16
	MinRightSideBearing          int16
	XMaxExtent                   int16
	CaretSlopeRise               int16
	CaretSlopeRun                int16
	CaretOffset                  int16
	NumberOfHMetrics             uint16
}

// loadHhea parses the hhea table. maxp must already be loaded, since
// numberOfHMetrics is validated against maxp.numGlyphs (spec.md §4.5).
func loadHhea(b []byte, maxp *Maxp) (*Hhea, Result) {
	if len(b) < hheaLength {
		return nil, ResultInvalidHheaLength
	}
	c := ttfbin.NewCursor(b)
	major, minor := c.U16(), c.U16()
	if major != 1 || minor != 0 {
		return nil, ResultInvalidHheaVersion
	}
	h := &Hhea{}
	h.Ascender = c.I16()
	h.Descender = c.I16()
	h.LineGap = c.I16()
	h.AdvanceWidthMax = c.U16()
	h.MinLeftSideBearing = c.I16()
	h.MinRightSideBearing = c.I16()
	h.XMaxExtent = c.I16()
	h.CaretSlopeRise = c.I16()
	h.CaretSlopeRun = c.I16()
	h.CaretOffset = c.I16()
	c.Skip(8) // 4 reserved int16 fields
	metricDataFormat := c.I16()
	if metricDataFormat != 0 {
		return nil, ResultInvalidHheaMetricDataFormat
	}
	h.NumberOfHMetrics = c.U16()
	if h.NumberOfHMetrics > maxp.NumGlyphs {
		return nil, ResultInvalidHheaNumberOfHMetrics
	}
	return h, ResultSuccess
}
