package response

import (
	"wellness/internal/core/domain/localtime"
	"wellness/internal/core/domain/reminder"
)

type Entry struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Time      string `json:"time"`
	Repeat    string `json:"repeat"`
	CreatedAt string `json:"created_at"`
}

func (e *Entry) FromDomainEntry(de reminder.Entry) {
	e.ID = string(de.ID)
	e.Type = de.Type
	e.Title = de.Title
	e.Message = de.Message
	e.Time = localtime.Format(de.At)
	e.Repeat = de.Repeat.String()
	e.CreatedAt = localtime.Format(de.CreatedAt)
}

// GroupedEntry omits the type since it is the grouping key.
type GroupedEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Time      string `json:"time"`
	Repeat    string `json:"repeat"`
	CreatedAt string `json:"created_at"`
}

func (e *GroupedEntry) FromDomainEntry(de reminder.Entry) {
	e.ID = string(de.ID)
	e.Title = de.Title
	e.Message = de.Message
	e.Time = localtime.Format(de.At)
	e.Repeat = de.Repeat.String()
	e.CreatedAt = localtime.Format(de.CreatedAt)
}

func GroupedEntries(grouped map[string][]reminder.Entry) map[string][]GroupedEntry {
	result := make(map[string][]GroupedEntry, len(grouped))
	for entryType, entries := range grouped {
		projected := make([]GroupedEntry, len(entries))
		for ix, entry := range entries {
			projected[ix].FromDomainEntry(entry)
		}
		result[entryType] = projected
	}
	return result
}
