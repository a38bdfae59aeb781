package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

// Loca holds the parsed contents of the loca table (spec.md §4.3): an
// offset per glyph (plus one trailing sentinel) into the glyf table,
// decoded to byte offsets regardless of the table's on-disk short/long
// encoding.
type Loca struct {
	Offsets []uint32
}

// loadLoca parses the loca table. maxp and head must already be loaded
// (head supplies indexToLocFormat); glyfLen is the length of the glyf
// table, used to bounds-check the final offset, or 0 if glyf is absent
// (loca is still validated for internal consistency even if glyf will
// never be read).
func loadLoca(b []byte, maxp *Maxp, head *Head, glyfLen int) (*Loca, Result) {
	n := int(maxp.NumGlyphs) + 1
	l := &Loca{Offsets: make([]uint32, n)}

	if head.IndexToLocFormat == 0 {
		if len(b) < n*2 {
			return nil, ResultInvalidLocaLength
		}
		c := ttfbin.NewCursor(b)
		for i := 0; i < n; i++ {
			l.Offsets[i] = uint32(c.U16()) * 2
		}
	} else {
		if len(b) < n*4 {
			return nil, ResultInvalidLocaLength
		}
		c := ttfbin.NewCursor(b)
		for i := 0; i < n; i++ {
			l.Offsets[i] = c.U32()
		}
	}

	prev := l.Offsets[0]
	for i := 1; i < n; i++ {
		if l.Offsets[i] < prev {
			return nil, ResultInvalidLocaOffset
		}
		prev = l.Offsets[i]
	}
	if glyfLen != 0 && int(l.Offsets[n-1]) > glyfLen {
		return nil, ResultInvalidLocaOffset
	}
	return l, ResultSuccess
}

// GlyphRange returns the byte range [start, end) within glyf for glyph
// index gid. start == end means an empty glyph (e.g. the space character),
// which decodes to zero contours without reading glyf at all.
func (l *Loca) GlyphRange(gid int) (start, end uint32, ok bool) {
	if gid < 0 || gid+1 >= len(l.Offsets) {
		return 0, 0, false
	}
	return l.Offsets[gid], l.Offsets[gid+1], true
}
