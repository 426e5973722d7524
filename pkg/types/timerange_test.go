package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("09:00 - 12:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), r.Start)
	assert.Equal(t, TimeString("12:00"), r.End)
	assert.False(t, r.IsPoint())
	assert.Equal(t, 180, r.DurationMinutes())

	// Одиночное время превращается в точечный диапазон
	point, err := ParseTimeRange("14:00")
	require.NoError(t, err)
	assert.True(t, point.IsPoint())
	assert.Equal(t, "14:00", point.String())

	_, err = ParseTimeRange("12:00 - 09:00")
	assert.ErrorIs(t, err, ErrRangeOrder)

	_, err = ParseTimeRange("9 - 12")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = ParseTimeRange("09:00 - 10:00 - 11:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestTimeRange_Overlaps(t *testing.T) {
	base := TimeRange{Start: "09:00", End: "12:00"}

	assert.True(t, base.Overlaps(TimeRange{Start: "10:30", End: "13:00"}))
	assert.True(t, base.Overlaps(TimeRange{Start: "08:00", End: "09:01"}))
	assert.True(t, base.Overlaps(TimeRange{Start: "10:00", End: "11:00"}))

	// Граничащие интервалы не пересекаются
	assert.False(t, base.Overlaps(TimeRange{Start: "12:00", End: "14:00"}))
	assert.False(t, base.Overlaps(TimeRange{Start: "07:00", End: "09:00"}))
	assert.False(t, base.Overlaps(TimeRange{Start: "13:00", End: "15:00"}))
}

func TestTimeRange_String(t *testing.T) {
	assert.Equal(t, "09:00 - 12:00", TimeRange{Start: "09:00", End: "12:00"}.String())
	assert.Equal(t, "14:00", TimeRange{Start: "14:00", End: "14:00"}.String())
}
