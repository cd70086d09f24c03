package createreminder

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
	Type    string
	Title   string
	Message string
	At      time.Time
	Repeat  reminder.Repeat
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

	now := s.now()
	entry := reminder.Entry{
		ID:        reminder.NewEntryID(),
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		At:        input.At.UTC(),
		Repeat:    input.Repeat,
		CreatedAt: now,
	}
	if err := entry.Validate(); err != nil {
		return result, err
	}

	doc, err := s.documents.Append(ctx, input.UserID, entry)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	// Past-dated entries are stored but never armed.
	if entry.At.After(now) {
		if err := s.armDispatch(ctx, input.UserID, entry, now); err != nil {
			return result, err
		}
	}

	s.log.Info(
		ctx,
		"Reminder entry successfully created.",
		logging.Entry("userID", input.UserID),
		logging.Entry("entryID", entry.ID),
		logging.Entry("entryCount", len(doc.Entries)),
	)
	result.Entry = entry
	return result, nil
}

func (s *service) armDispatch(ctx context.Context, userID user.ID, entry reminder.Entry, now time.Time) error {
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

	dispatch := reminder.Dispatch{
		EntryID:     entry.ID,
		UserID:      userID,
		FireAt:      entry.At,
		ScheduledAt: createInput.ScheduledAt,
	}
	if err := s.scheduler.ScheduleDispatch(ctx, dispatch); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entryID", entry.ID))
		return err
	}
	return nil
}
