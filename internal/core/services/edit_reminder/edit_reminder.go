package editreminder

import (
	"context"
	"time"
	c "wellness/internal/core/domain/common"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
)

type Input struct {
	UserID  user.ID
	EntryID reminder.EntryID
	Type    c.Optional[string]
	Title   c.Optional[string]
	Message c.Optional[string]
	At      c.Optional[time.Time]
	Repeat  c.Optional[reminder.Repeat]
}

type Result struct {
	Entry reminder.Entry
}

type service struct {
	log        logging.Logger
	documents  reminder.DocumentRepository
	dispatches reminder.DispatchRepository
	scheduler  reminder.Scheduler
	now        func() time.Time
}

func New(
	log logging.Logger,
	documents reminder.DocumentRepository,
	dispatches reminder.DispatchRepository,
	scheduler reminder.Scheduler,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if documents == nil {
		panic(e.NewNilArgumentError("documents"))
	}
	if dispatches == nil {
		panic(e.NewNilArgumentError("dispatches"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		documents:  documents,
		dispatches: dispatches,
		scheduler:  scheduler,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID.IsZero() {
		return result, user.ErrUserDoesNotExist
	}

	doc, err := s.documents.Get(ctx, input.UserID)
	if err != nil {
		return result, err
	}
	entry, ok := doc.EntryByID(input.EntryID)
	if !ok {
		return result, reminder.ErrEntryDoesNotExist
	}

	previousAt := entry.At
	if input.Type.IsPresent {
		entry.Type = input.Type.Value
	}
	if input.Title.IsPresent {
		entry.Title = input.Title.Value
	}
	if input.Message.IsPresent {
		entry.Message = input.Message.Value
	}
	if input.At.IsPresent {
		entry.At = input.At.Value.UTC()
	}
	if input.Repeat.IsPresent {
		entry.Repeat = input.Repeat.Value
	}
	if err := entry.Validate(); err != nil {
		return result, err
	}

	if _, err := s.documents.UpdateEntry(ctx, input.UserID, entry); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if !entry.At.Equal(previousAt) {
		if err := s.rearmDispatch(ctx, input.UserID, entry); err != nil {
			return result, err
		}
	}

	s.log.Info(
		ctx,
		"Reminder entry successfully edited.",
		logging.Entry("userID", input.UserID),
		logging.Entry("entryID", entry.ID),
	)
	result.Entry = entry
	return result, nil
}

// rearmDispatch drops pending occurrences scheduled for the old time and
// arms one for the new time when it is still in the future.
func (s *service) rearmDispatch(ctx context.Context, userID user.ID, entry reminder.Entry) error {
	if err := s.dispatches.DeletePendingByEntry(ctx, entry.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entryID", entry.ID))
		return err
	}

	now := s.now()
	if !entry.At.After(now) {
		return nil
	}

	createInput := reminder.CreateDispatchInput{
		EntryID: entry.ID,
		UserID:  userID,
		FireAt:  entry.At,
	}
	dueSoon := entry.At.Sub(now) < reminder.DURATION_FOR_SCHEDULING
	if dueSoon {
		createInput.ScheduledAt = c.NewOptional(now, true)
	}
	created, err := s.dispatches.Create(ctx, createInput)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entryID", entry.ID))
		return err
	}
	if !created || !dueSoon {
		return nil
	}
	return s.scheduler.ScheduleDispatch(ctx, reminder.Dispatch{
		EntryID:     entry.ID,
		UserID:      userID,
		FireAt:      entry.At,
		ScheduledAt: createInput.ScheduledAt,
	})
}
