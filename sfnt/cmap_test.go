package sfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCmapSubtable_Format0(t *testing.T) {
	b := make([]byte, 6+256)
	putU16(b[0:], 0) // format
	b[6+65] = 42     // byte 'A' maps to glyph 42
	m, res := decodeCmapSubtable(b, 1, 0)
	require.Equal(t, ResultSuccess, res)

	gid, ok := m.Lookup('A')
	require.True(t, ok)
	assert.EqualValues(t, 42, gid)

	_, ok = m.Lookup('B')
	assert.False(t, ok)
}

func TestDecodeCmapSubtable_Format4_DeltaOnly(t *testing.T) {
	// A single segment [65, 90] mapping directly via idDelta, no
	// glyphIdArray indirection (rangeOffset == 0).
	b := make([]byte, 14+8+2)
	putU16(b[0:], 4)  // format
	putU16(b[6:], 2)  // segCountX2 = 2 (one segment)
	putU16(b[14:], 90) // endCode[0]
	putU16(b[18:], 65) // startCode[0]
	putU16(b[20:], 10) // idDelta[0]
	putU16(b[22:], 0)  // idRangeOffset[0]

	m, res := decodeCmapSubtable(b, 3, 1)
	require.Equal(t, ResultSuccess, res)

	gid, ok := m.Lookup('A') // 65 + 10
	require.True(t, ok)
	assert.EqualValues(t, 75, gid)

	_, ok = m.Lookup(rune(64))
	assert.False(t, ok)
}

func TestDecodeCmapSubtable_Format4_GlyphIDArray(t *testing.T) {
	b := make([]byte, 14+8+2+2) // header + arrays + one glyphIdArray entry
	putU16(b[0:], 4)
	putU16(b[6:], 2)  // segCountX2 = 2
	putU16(b[14:], 65) // endCode[0]
	putU16(b[18:], 65) // startCode[0]
	putU16(b[20:], 0)  // idDelta[0]
	putU16(b[22:], 2)  // idRangeOffset[0]
	putU16(b[24:], 5)  // glyphIdArray[0]

	m, res := decodeCmapSubtable(b, 3, 1)
	require.Equal(t, ResultSuccess, res)

	gid, ok := m.Lookup(rune(65))
	require.True(t, ok)
	assert.EqualValues(t, 5, gid)
}

func TestDecodeCmapSubtable_Format6(t *testing.T) {
	b := make([]byte, 10+3*2)
	putU16(b[0:], 6)
	putU16(b[6:], 100) // firstCode
	putU16(b[8:], 3)   // entryCount
	putU16(b[10:], 11)
	putU16(b[12:], 12)
	putU16(b[14:], 13)

	m, res := decodeCmapSubtable(b, 1, 0)
	require.Equal(t, ResultSuccess, res)

	gid, ok := m.Lookup(rune(101))
	require.True(t, ok)
	assert.EqualValues(t, 12, gid)

	_, ok = m.Lookup(rune(99))
	assert.False(t, ok)
}

func TestDecodeCmapSubtable_Format12(t *testing.T) {
	b := make([]byte, 16+12)
	putU16(b[0:], 12)
	putU32(b[12:], 1) // numGroups
	putU32(b[16:], 1000)
	putU32(b[20:], 1010)
	putU32(b[24:], 50)

	m, res := decodeCmapSubtable(b, 3, 10)
	require.Equal(t, ResultSuccess, res)

	gid, ok := m.Lookup(rune(1005))
	require.True(t, ok)
	assert.EqualValues(t, 55, gid)

	_, ok = m.Lookup(rune(2000))
	assert.False(t, ok)
}

func TestDecodeCmapSubtable_UnsupportedFormat(t *testing.T) {
	b := make([]byte, 8)
	putU16(b[0:], 2) // high-byte mapping, unsupported
	_, res := decodeCmapSubtable(b, 1, 0)
	assert.Equal(t, ResultInvalidCmapSubtableFormat, res)
}

func TestLoadCmap_PrefersWindowsUnicodeOverMacRoman(t *testing.T) {
	format0 := make([]byte, 6+256)
	putU16(format0[0:], 0)
	format0[6+1] = 9 // irrelevant marker value

	format4 := make([]byte, 14+8+2)
	putU16(format4[0:], 4)
	putU16(format4[6:], 2)
	putU16(format4[14:], 90)
	putU16(format4[18:], 65)
	putU16(format4[20:], 1)
	putU16(format4[22:], 0)

	header := make([]byte, 4+2*8)
	putU16(header[0:], 0) // version
	putU16(header[2:], 2) // numTables

	off0 := uint32(len(header))
	off4 := off0 + uint32(len(format0))

	// Entry 0: Macintosh Roman (1, 0).
	putU16(header[4:], 1)
	putU16(header[6:], 0)
	putU32(header[8:], off0)
	// Entry 1: Windows Unicode BMP (3, 1) — preferred.
	putU16(header[12:], 3)
	putU16(header[14:], 1)
	putU32(header[16:], off4)

	full := append(append(append([]byte{}, header...), format0...), format4...)

	m, res := loadCmap(full)
	require.Equal(t, ResultSuccess, res)
	assert.EqualValues(t, 3, m.PlatformID)
	assert.EqualValues(t, 1, m.EncodingID)

	gid, ok := m.Lookup('A')
	require.True(t, ok)
	assert.EqualValues(t, 66, gid) // 65 + idDelta(1)
}

func TestLoadCmap_NoSupportedSubtable(t *testing.T) {
	header := make([]byte, 4+8)
	putU16(header[0:], 0)
	putU16(header[2:], 1)
	putU16(header[4:], 99) // unrecognized platform
	putU16(header[6:], 99)
	putU32(header[8:], 12)

	_, res := loadCmap(header)
	assert.Equal(t, ResultCmapNoSupportedSubtable, res)
}
