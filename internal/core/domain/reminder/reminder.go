package reminder

import (
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/user"

	"github.com/google/uuid"
)

type EntryID string

func NewEntryID() EntryID {
	return EntryID(uuid.NewString())
}

// Entry is a single scheduled notification definition. Entries live inside
// their owner's document and are serialized to JSONB as-is.
type Entry struct {
	ID        EntryID   `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	At        time.Time `json:"time"`
	Repeat    Repeat    `json:"repeat"`
	CreatedAt time.Time `json:"created_at"`
}

func (entry Entry) Validate() error {
	if entry.ID == "" {
		return e.NewInvalidStateError("entry id must be set")
	}
	if entry.Type == "" {
		return e.NewInvalidStateError("entry type must be set")
	}
	if entry.At.IsZero() {
		return e.NewInvalidStateError("entry time must be set")
	}
	if entry.At.Location() != time.UTC {
		return ErrEntryTimeIsNotUTC
	}
	if entry.Repeat == RepeatUnknown {
		return ErrParseRepeat
	}
	return nil
}

// Document is the per-user aggregate holding all of the user's reminder
// entries in insertion order. At most one document exists per user.
type Document struct {
	UserID  user.ID
	Entries []Entry
}

func (d Document) EntryByID(id EntryID) (Entry, bool) {
	for _, entry := range d.Entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// GroupByType maps entry type to the entries of that type, preserving the
// document's insertion order within each group.
func (d Document) GroupByType() map[string][]Entry {
	grouped := make(map[string][]Entry)
	for _, entry := range d.Entries {
		grouped[entry.Type] = append(grouped[entry.Type], entry)
	}
	return grouped
}
