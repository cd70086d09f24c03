package schema

import (
	"encoding/json"
	"time"
)

type Dispatch struct {
	EntryID string
	UserID  string
	FireAt  time.Time
}

func (d *Dispatch) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *Dispatch) Unmarshal(data []byte) error {
	return json.Unmarshal(data, d)
}
