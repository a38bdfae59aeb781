package sfnt

// buildFont assembles a minimal sfnt directory around the given tables,
// computing correct offsets, padding, and checksums (head excepted, to
// exercise the same exemption the directory loader grants it). Order of
// insertion doesn't matter; tables map iteration order is randomized by
// Go, but the test helper always emits a stable order driven by a
// caller-supplied name slice so tests can reason about byte offsets if
// they need to.
func buildFont(order []string, tables map[string][]byte) []byte {
	n := len(order)
	head := make([]byte, 12+16*n)
	putU32(head[0:], sfntVersionTrueType)
	putU16(head[4:], uint16(n))
	// searchRange, entrySelector, rangeShift are not validated; leave 0.

	body := []byte{}
	offset := len(head)
	for i, name := range order {
		t := tables[name]
		padded := append(append([]byte(nil), t...), make([]byte, (4-len(t)%4)%4)...)

		rec := head[12+16*i:]
		copy(rec[0:4], name)
		var checksum uint32
		if name != "head" {
			checksum = tableChecksum(t)
		}
		putU32(rec[4:], checksum)
		putU32(rec[8:], uint32(offset))
		putU32(rec[12:], uint32(len(t)))

		body = append(body, padded...)
		offset += len(padded)
	}
	return append(head, body...)
}

func putU16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// minimalRequiredTables returns byte-valid (but otherwise minimal)
// contents for all nine required tables, describing a font with
// numGlyphs glyphs, each with a zero-contour (empty) outline, so tests
// can build a loadable font and then override individual tables to
// exercise specific failure paths.
func minimalRequiredTables(numGlyphs int) (order []string, tables map[string][]byte) {
	maxp := make([]byte, maxpLength)
	putU32(maxp[0:], 0x00010000)
	putU16(maxp[4:], uint16(numGlyphs))
	putU16(maxp[14:], 1) // maxZones

	head := make([]byte, headLength)
	putU16(head[0:], 1) // majorVersion
	putU32(head[12:], 0x5F0F3CF5)
	putU16(head[18:], 1000) // unitsPerEm
	// xMin, yMin, xMax, yMax left at 0 (valid: 0 <= 0).
	putU16(head[50:], 0) // indexToLocFormat: short

	hhea := make([]byte, hheaLength)
	putU16(hhea[0:], 1) // majorVersion
	putU16(hhea[34:], uint16(numGlyphs))

	hmtx := make([]byte, 4*numGlyphs)

	loca := make([]byte, 2*(numGlyphs+1)) // all-zero: every glyph empty

	name := make([]byte, nameHeaderLength)
	// version 0, count 0, storageOffset 6 (valid: no records to check)
	putU16(name[4:], 6)

	post := make([]byte, postLength)
	putU32(post[0:], 0x00030000) // version 3.0: no names

	cmapHeader := make([]byte, 4+8)
	putU16(cmapHeader[2:], 1) // numTables
	putU16(cmapHeader[4:], 3) // platformID
	putU16(cmapHeader[6:], 1) // encodingID
	putU32(cmapHeader[8:], uint32(len(cmapHeader)))

	cmapSub := make([]byte, 24) // format 4, segCount 1, no glyphIdArray
	putU16(cmapSub[0:], 4)      // format
	putU16(cmapSub[6:], 2)      // segCountX2
	putU16(cmapSub[14:], 0xFFFF) // endCode[0]
	putU16(cmapSub[18:], 0xFFFF) // startCode[0]
	putU16(cmapSub[20:], 1)      // idDelta[0]
	// idRangeOffset[0] stays 0

	cmap := append(cmapHeader, cmapSub...)

	glyf := []byte{}

	order = []string{"maxp", "head", "hhea", "hmtx", "loca", "name", "post", "cmap", "glyf"}
	tables = map[string][]byte{
		"maxp": maxp, "head": head, "hhea": hhea, "hmtx": hmtx,
		"loca": loca, "name": name, "post": post, "cmap": cmap, "glyf": glyf,
	}
	return order, tables
}
