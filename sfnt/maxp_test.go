package sfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMaxp(t *testing.T) {
	b := make([]byte, maxpLength)
	putU32(b[0:], 0x00010000)
	putU16(b[4:], 5)
	putU16(b[14:], 1) // maxZones

	m, res := loadMaxp(b)
	assert.Equal(t, ResultSuccess, res)
	assert.EqualValues(t, 5, m.NumGlyphs)
	assert.EqualValues(t, 1, m.MaxZones)
}

func TestLoadMaxp_TooShort(t *testing.T) {
	_, res := loadMaxp(make([]byte, maxpLength-1))
	assert.Equal(t, ResultInvalidMaxpLength, res)
}

func TestLoadMaxp_BadVersion(t *testing.T) {
	b := make([]byte, maxpLength)
	putU32(b[0:], 0x00005000) // CFF version 0.5
	_, res := loadMaxp(b)
	assert.Equal(t, ResultInvalidMaxpVersion, res)
}

func TestLoadMaxp_BadMaxZones(t *testing.T) {
	b := make([]byte, maxpLength)
	putU32(b[0:], 0x00010000)
	putU16(b[4:], 5)
	putU16(b[14:], 3) // invalid
	_, res := loadMaxp(b)
	assert.Equal(t, ResultInvalidMaxpMaxZones, res)
}

func TestLoadMaxp_ZeroGlyphs(t *testing.T) {
	b := make([]byte, maxpLength)
	putU32(b[0:], 0x00010000)
	putU16(b[14:], 1)
	_, res := loadMaxp(b)
	assert.Equal(t, ResultInvalidMaxpNumGlyphs, res)
}

func TestLoadMaxp_OneGlyph(t *testing.T) {
	// A font must contain at least a .notdef plus one real glyph.
	b := make([]byte, maxpLength)
	putU32(b[0:], 0x00010000)
	putU16(b[4:], 1)
	putU16(b[14:], 1)
	_, res := loadMaxp(b)
	assert.Equal(t, ResultInvalidMaxpNumGlyphs, res)
}

func TestLoadMaxp_TwoGlyphsIsMinimumValid(t *testing.T) {
	b := make([]byte, maxpLength)
	putU32(b[0:], 0x00010000)
	putU16(b[4:], 2)
	putU16(b[14:], 1)
	m, res := loadMaxp(b)
	assert.Equal(t, ResultSuccess, res)
	assert.EqualValues(t, 2, m.NumGlyphs)
}
