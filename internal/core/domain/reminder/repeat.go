package reminder

import (
	"encoding/json"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Repeat struct {
	v string
}

func (r Repeat) String() string {
	return r.v
}

var (
	RepeatUnknown = Repeat{}
	RepeatNone    = Repeat{v: "none"}
	RepeatDaily   = Repeat{v: "daily"}
)

func ParseRepeat(value string) (Repeat, error) {
	switch value {
	case "none":
		return RepeatNone, nil
	case "daily":
		return RepeatDaily, nil
	default:
		return RepeatUnknown, ErrParseRepeat
	}
}

// NextFrom returns the next occurrence after t. Recurrence is a chain of
// one-shot triggers, so the result is always exactly one step ahead.
func (r Repeat) NextFrom(t time.Time) (time.Time, bool) {
	if r != RepeatDaily {
		return time.Time{}, false
	}
	return carbon.Time2Carbon(t.UTC()).AddDays(1).Carbon2Time(), true
}

func (r Repeat) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.v)
}

func (r *Repeat) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRepeat(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
