package reminder

import (
	"context"
	"time"
	c "wellness/internal/core/domain/common"
	"wellness/internal/core/domain/user"
)

type DocumentRepository interface {
	// Append adds the entry to the user's document, creating the document
	// when absent. The append is a single atomic operation.
	Append(ctx context.Context, userID user.ID, entry Entry) (Document, error)
	Get(ctx context.Context, userID user.ID) (Document, error)
	// UpdateEntry replaces the entry with the same ID in place, preserving
	// the order of the remaining entries.
	UpdateEntry(ctx context.Context, userID user.ID, entry Entry) (Document, error)
	Delete(ctx context.Context, userID user.ID) error
}

// Dispatch is one scheduled occurrence of an entry. Rows persist across
// restarts; SentAt records occurrences that have already fired.
type Dispatch struct {
	EntryID     EntryID
	UserID      user.ID
	FireAt      time.Time
	ScheduledAt c.Optional[time.Time]
	SentAt      c.Optional[time.Time]
}

type CreateDispatchInput struct {
	EntryID     EntryID
	UserID      user.ID
	FireAt      time.Time
	ScheduledAt c.Optional[time.Time]
}

type ScheduleDispatchesInput struct {
	AtBefore    time.Time
	ScheduledAt time.Time
}

type DispatchRepository interface {
	// Create inserts a pending occurrence. Returns false when the same
	// occurrence already exists.
	Create(ctx context.Context, input CreateDispatchInput) (bool, error)
	Get(ctx context.Context, entryID EntryID, fireAt time.Time) (Dispatch, error)
	// Schedule claims all unclaimed occurrences due before AtBefore and
	// stamps them with ScheduledAt. Claimed rows are never returned twice.
	Schedule(ctx context.Context, input ScheduleDispatchesInput) ([]Dispatch, error)
	// MarkSent stamps the occurrence as fired. Returns false when it was
	// already marked by a concurrent delivery.
	MarkSent(ctx context.Context, entryID EntryID, fireAt time.Time, sentAt time.Time) (bool, error)
	DeletePendingByEntry(ctx context.Context, entryID EntryID) error
	DeletePendingByUser(ctx context.Context, userID user.ID) error
}
