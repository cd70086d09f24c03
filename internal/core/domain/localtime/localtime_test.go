package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSubtractsFixedOffset(t *testing.T) {
	cases := []struct {
		id       string
		value    string
		offset   int
		expected string
	}{
		{"ist-afternoon", "2023-05-01 18:30:00", 330, "2023-05-01T13:00:00Z"},
		{"ist-midnight-rollover", "2023-05-01 02:00:00", 330, "2023-04-30T20:30:00Z"},
		{"zero-offset", "2023-05-01 10:15:30", 0, "2023-05-01T10:15:30Z"},
		{"iso-input", "2023-12-31T23:59:59", 330, "2023-12-31T18:29:59Z"},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			normalized, err := Normalize(testcase.value, testcase.offset)

			assert := require.New(t)
			assert.Nil(err)
			assert.Equal(testcase.expected, Format(normalized))
		})
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	// Adding the offset back must reproduce the original wall-clock fields.
	value := "2023-08-15 07:45:10"
	offset := 330

	normalized, err := Normalize(value, offset)

	assert := require.New(t)
	assert.Nil(err)
	wallClock := normalized.Add(time.Duration(offset) * time.Minute)
	assert.Equal("2023-08-15 07:45:10", wallClock.Format("2006-01-02 15:04:05"))
}

func TestNormalizeInvalidInput(t *testing.T) {
	for _, value := range []string{"", "not-a-time", "2023-13-45 99:00:00"} {
		_, err := Normalize(value, DEFAULT_OFFSET_MINUTES)
		require.ErrorIs(t, err, ErrInvalidLocalTime)
	}
}
