package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

// cmap subtable format 4 segment, grounded on the teacher's `cm` struct in
// freetype/truetype/truetype.go, generalized to the other supported
// formats.
type cmapSegment struct {
	start, end, delta, rangeOffset uint16
}

type cmapGroup struct {
	startChar, endChar, startGID uint32
}

// Cmap holds a single decoded character-to-glyph subtable: whichever of
// formats 0, 4, 6, or 12 was selected by the platform/encoding preference
// order documented below.
type Cmap struct {
	PlatformID, EncodingID uint16
	format                 uint16

	byteMap  []uint8      // format 0
	segments []cmapSegment
	glyphIDs []uint16     // format 4's glyphIdArray, indexed via rangeOffset
	first    uint16       // format 6 firstCode
	entries6 []uint16     // format 6 glyphIdArray
	groups   []cmapGroup  // format 12
}

// cmapPreference orders (platformID, encodingID) pairs from most to least
// preferred, matching the teacher's Unicode-then-Microsoft fallback
// (freetype/truetype/truetype.go's parseCmap) extended with the
// platform/encoding IDs golang.org/x/image/font/sfnt documents for formats
// 6 and 12.
var cmapPreference = [][2]uint16{
	{3, 10}, // Windows, UCS-4 (format 12 carrier)
	{0, 4},  // Unicode 2.0+, full repertoire (format 12 carrier)
	{3, 1},  // Windows, UCS-2 (format 4 carrier)
	{0, 3},  // Unicode 2.0, BMP (format 4 carrier)
	{1, 0},  // Macintosh, Roman (format 0 or 6 carrier)
}

// loadCmap parses the cmap table header, selects the best available
// subtable per cmapPreference, and decodes it.
func loadCmap(b []byte) (*Cmap, Result) {
	if len(b) < 4 {
		return nil, ResultInvalidCmapLength
	}
	c := ttfbin.NewCursor(b)
	version := c.U16()
	if version != 0 {
		return nil, ResultInvalidCmapVersion
	}
	numTables := int(c.U16())
	if len(b) < 4+8*numTables {
		return nil, ResultInvalidCmapLength
	}

	type entry struct {
		platformID, encodingID uint16
		offset                 uint32
	}
	entries := make([]entry, numTables)
	for i := range entries {
		entries[i].platformID = c.U16()
		entries[i].encodingID = c.U16()
		entries[i].offset = c.U32()
	}

	var best *entry
	bestRank := len(cmapPreference)
	for i := range entries {
		e := &entries[i]
		for rank, pref := range cmapPreference {
			if pref[0] == e.platformID && pref[1] == e.encodingID && rank < bestRank {
				best, bestRank = e, rank
				break
			}
		}
	}
	if best == nil {
		return nil, ResultCmapNoSupportedSubtable
	}
	if best.offset >= uint32(len(b)) {
		return nil, ResultInvalidCmapLength
	}

	return decodeCmapSubtable(b[best.offset:], best.platformID, best.encodingID)
}

func decodeCmapSubtable(b []byte, platformID, encodingID uint16) (*Cmap, Result) {
	if len(b) < 2 {
		return nil, ResultInvalidCmapLength
	}
	c := ttfbin.NewCursor(b)
	format := c.U16()
	m := &Cmap{PlatformID: platformID, EncodingID: encodingID, format: format}

	switch format {
	case 0:
		if len(b) < 6+256 {
			return nil, ResultInvalidCmapLength
		}
		c.Skip(4) // length, language
		m.byteMap = make([]uint8, 256)
		for i := range m.byteMap {
			m.byteMap[i] = c.U8()
		}
		return m, ResultSuccess

	case 4:
		if len(b) < 14 {
			return nil, ResultInvalidCmapLength
		}
		c.Skip(4) // length, language
		segCountX2 := int(c.U16())
		if segCountX2%2 != 0 {
			return nil, ResultInvalidCmapSubtableFormat
		}
		segCount := segCountX2 / 2
		c.Skip(6) // searchRange, entrySelector, rangeShift
		need := 14 + segCountX2*4 + 2
		if len(b) < need {
			return nil, ResultInvalidCmapLength
		}
		m.segments = make([]cmapSegment, segCount)
		for i := range m.segments {
			m.segments[i].end = c.U16()
		}
		c.Skip(2) // reservedPad
		for i := range m.segments {
			m.segments[i].start = c.U16()
		}
		for i := range m.segments {
			m.segments[i].delta = c.U16()
		}
		for i := range m.segments {
			m.segments[i].rangeOffset = c.U16()
		}
		glyphIDCount := c.Len() / 2
		m.glyphIDs = make([]uint16, glyphIDCount)
		for i := range m.glyphIDs {
			m.glyphIDs[i] = c.U16()
		}
		return m, ResultSuccess

	case 6:
		if len(b) < 10 {
			return nil, ResultInvalidCmapLength
		}
		c.Skip(4) // length, language
		m.first = c.U16()
		count := int(c.U16())
		if len(b) < 10+count*2 {
			return nil, ResultInvalidCmapLength
		}
		m.entries6 = make([]uint16, count)
		for i := range m.entries6 {
			m.entries6[i] = c.U16()
		}
		return m, ResultSuccess

	case 12:
		if len(b) < 16 {
			return nil, ResultInvalidCmapLength
		}
		c.Skip(2) // reserved
		c.Skip(8) // length (u32), language (u32)
		numGroups := int(c.U32())
		if len(b) < 16+numGroups*12 {
			return nil, ResultInvalidCmapLength
		}
		m.groups = make([]cmapGroup, numGroups)
		for i := range m.groups {
			m.groups[i].startChar = c.U32()
			m.groups[i].endChar = c.U32()
			m.groups[i].startGID = c.U32()
		}
		return m, ResultSuccess
	}

	return nil, ResultInvalidCmapSubtableFormat
}

// Lookup maps a Unicode code point to a glyph index, returning (0, false)
// if the subtable has no mapping for it (glyph index 0 is reserved for
// .notdef, so a zero return and a false ok are equivalent signals).
func (m *Cmap) Lookup(r rune) (uint16, bool) {
	switch m.format {
	case 0:
		if r < 0 || int(r) >= len(m.byteMap) {
			return 0, false
		}
		return uint16(m.byteMap[r]), m.byteMap[r] != 0

	case 4:
		c := uint16(r)
		for i, seg := range m.segments {
			if c < seg.start || c > seg.end {
				continue
			}
			if seg.rangeOffset == 0 {
				g := c + seg.delta
				return g, g != 0
			}
			// rangeOffset is a byte offset from its own field; expressed
			// in glyphIdArray units it resolves the same way the teacher's
			// accessor does at glyph-index time.
			idx := int(seg.rangeOffset)/2 + int(c-seg.start) - (len(m.segments) - i)
			if idx < 0 || idx >= len(m.glyphIDs) {
				return 0, false
			}
			g := m.glyphIDs[idx]
			if g == 0 {
				return 0, false
			}
			return g + seg.delta, true
		}
		return 0, false

	case 6:
		if r < rune(m.first) {
			return 0, false
		}
		i := int(r) - int(m.first)
		if i >= len(m.entries6) {
			return 0, false
		}
		return m.entries6[i], m.entries6[i] != 0

	case 12:
		u := uint32(r)
		for _, g := range m.groups {
			if u < g.startChar || u > g.endChar {
				continue
			}
			gid := uint16(g.startGID + (u - g.startChar))
			return gid, gid != 0
		}
		return 0, false
	}
	return 0, false
}
