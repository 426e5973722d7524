package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
	}{
		{"30 นาที", 30},
		{"45 นาที", 45},
		{"1 ชั่วโมง", 60},
		{"1.5 ชั่วโมง", 90},
		{"2 ชั่วโมง", 120},
		{"90", 90}, // bare number is minutes
	}

	for _, tc := range cases {
		got, err := ParseDuration(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.minutes, got, tc.input)
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "เร็วๆ", "abc นาที", "-30 นาที", "0 ชั่วโมง"} {
		_, err := ParseDuration(input)
		assert.ErrorIs(t, err, ErrInvalidDuration, input)
	}
}

func TestParseCustomDuration(t *testing.T) {
	got, err := ParseCustomDuration("45", UnitMinutes)
	require.NoError(t, err)
	assert.Equal(t, 45, got)

	got, err = ParseCustomDuration("2.5", UnitHours)
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	_, err = ParseCustomDuration("45", DurationUnit("วินาที"))
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestValidateBookingDuration(t *testing.T) {
	assert.NoError(t, ValidateBookingDuration(MinDurationMinutes))
	assert.NoError(t, ValidateBookingDuration(MaxDurationMinutes))
	assert.ErrorIs(t, ValidateBookingDuration(MinDurationMinutes-1), ErrDurationOutOfRange)
	assert.ErrorIs(t, ValidateBookingDuration(MaxDurationMinutes+1), ErrDurationOutOfRange)
}

func TestEndTimeFor(t *testing.T) {
	end, err := EndTimeFor("10:00", 90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", end.String())
}
