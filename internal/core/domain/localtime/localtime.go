package localtime

import (
	"errors"
	"time"

	"github.com/golang-module/carbon/v2"
)

// DEFAULT_OFFSET_MINUTES is the wall-clock offset of the mobile clients
// the service was originally built for (IST, UTC+5:30).
const DEFAULT_OFFSET_MINUTES = 330

const Layout = "2006-01-02T15:04:05Z"

var ErrInvalidLocalTime = errors.New("invalid local time")

// Normalize interprets value as a wall-clock timestamp at the given fixed
// offset east of UTC and returns the corresponding UTC instant with second
// precision.
func Normalize(value string, offsetMinutes int) (time.Time, error) {
	parsed := carbon.Parse(value, carbon.UTC)
	if parsed.Error != nil || parsed.IsZero() {
		return time.Time{}, ErrInvalidLocalTime
	}
	return parsed.SubMinutes(offsetMinutes).Carbon2Time().Truncate(time.Second), nil
}

// Format renders a UTC instant in the canonical YYYY-MM-DDTHH:mm:ssZ form.
func Format(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(Layout)
}
