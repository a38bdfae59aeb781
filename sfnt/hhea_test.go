package sfnt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHhea_Valid(t *testing.T) {
	maxp := &Maxp{NumGlyphs: 10}
	b := make([]byte, hheaLength)
	putU16(b[0:], 1)
	putU16(b[34:], 10)

	h, res := loadHhea(b, maxp)
	require.Equal(t, ResultSuccess, res)
	assert.EqualValues(t, 10, h.NumberOfHMetrics)
}

func TestLoadHhea_ZeroHMetricsAllowed(t *testing.T) {
	// A zero-length long-metric run is not rejected here; hmtx handles it
	// specially when it falls back to "no long record at all" (hmtx.go's
	// AdvanceWidth/LeftSideBearing).
	maxp := &Maxp{NumGlyphs: 5}
	b := make([]byte, hheaLength)
	putU16(b[0:], 1)
	putU16(b[34:], 0)

	h, res := loadHhea(b, maxp)
	require.Equal(t, ResultSuccess, res)
	assert.EqualValues(t, 0, h.NumberOfHMetrics)
}

func TestLoadHhea_NumberOfHMetricsExceedsNumGlyphs(t *testing.T) {
	maxp := &Maxp{NumGlyphs: 5}
	b := make([]byte, hheaLength)
	putU16(b[0:], 1)
	putU16(b[34:], 6)

	_, res := loadHhea(b, maxp)
	assert.Equal(t, ResultInvalidHheaNumberOfHMetrics, res)
}

func TestLoadHhea_BadMetricDataFormat(t *testing.T) {
	maxp := &Maxp{NumGlyphs: 5}
	b := make([]byte, hheaLength)
	putU16(b[0:], 1)
	putU16(b[32:], 1) // metricDataFormat
	putU16(b[34:], 3)

	_, res := loadHhea(b, maxp)
	assert.Equal(t, ResultInvalidHheaMetricDataFormat, res)
}
