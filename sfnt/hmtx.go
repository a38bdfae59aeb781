package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

// HMetric is one long horizontal metric record: advance width plus left
// side bearing.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// Hmtx holds the parsed contents of the hmtx table (spec.md §4.3):
// numberOfHMetrics long records followed by (numGlyphs - numberOfHMetrics)
// bare left-side-bearing values, each glyph beyond the long run reusing the
// final long record's advance width.
type Hmtx struct {
	HMetrics         []HMetric
	LeftSideBearings []int16
}

// loadHmtx parses the hmtx table. maxp and hhea must already be loaded,
// since the record counts come from numGlyphs and numberOfHMetrics.
func loadHmtx(b []byte, maxp *Maxp, hhea *Hhea) (*Hmtx, Result) {
	long := int(hhea.NumberOfHMetrics)
	extra := int(maxp.NumGlyphs) - long
	want := long*4 + extra*2
	if len(b) < want {
		return nil, ResultInvalidHmtxLength
	}
	c := ttfbin.NewCursor(b)
	h := &Hmtx{
		HMetrics:         make([]HMetric, long),
		LeftSideBearings: make([]int16, extra),
	}
	for i := 0; i < long; i++ {
		h.HMetrics[i].AdvanceWidth = c.U16()
		h.HMetrics[i].LeftSideBearing = c.I16()
	}
	for i := 0; i < extra; i++ {
		h.LeftSideBearings[i] = c.I16()
	}
	return h, ResultSuccess
}

// AdvanceWidth returns the advance width for glyph index gid, applying the
// "glyphs beyond the long run reuse the last long record" rule.
func (h *Hmtx) AdvanceWidth(gid int) uint16 {
	if gid < len(h.HMetrics) {
		return h.HMetrics[gid].AdvanceWidth
	}
	if len(h.HMetrics) == 0 {
		return 0
	}
	return h.HMetrics[len(h.HMetrics)-1].AdvanceWidth
}

// LeftSideBearing returns the left side bearing for glyph index gid.
func (h *Hmtx) LeftSideBearing(gid int) int16 {
	if gid < len(h.HMetrics) {
		return h.HMetrics[gid].LeftSideBearing
	}
	i := gid - len(h.HMetrics)
	if i < 0 || i >= len(h.LeftSideBearings) {
		return 0
	}
	return h.LeftSideBearings[i]
}
