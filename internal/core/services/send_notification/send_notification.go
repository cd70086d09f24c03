package sendnotification

import (
	"context"
	"errors"
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/notification"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
)

type Input struct {
	EntryID reminder.EntryID
	UserID  user.ID
	FireAt  time.Time
}

type Result struct {
	Sent bool
}

type service struct {
	log        logging.Logger
	documents  reminder.DocumentRepository
	dispatches reminder.DispatchRepository
	recipients notification.RecipientRepository
	sender     notification.Sender
	now        func() time.Time
}

func New(
	log logging.Logger,
	documents reminder.DocumentRepository,
	dispatches reminder.DispatchRepository,
	recipients notification.RecipientRepository,
	sender notification.Sender,
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
	if recipients == nil {
		panic(e.NewNilArgumentError("recipients"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		documents:  documents,
		dispatches: dispatches,
		recipients: recipients,
		sender:     sender,
		now:        now,
	}
}

// Run re-reads the occurrence and its entry at fire time. Anything deleted or
// rescheduled since the occurrence was armed makes the delivery a no-op, so a
// removed job never reaches the user.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	dispatch, err := s.dispatches.Get(ctx, input.EntryID, input.FireAt)
	if err != nil {
		if errors.Is(err, reminder.ErrDispatchDoesNotExist) {
			s.log.Info(ctx, "Dispatch is gone, skipping delivery.", entries(input)...)
			return result, nil
		}
		logging.Error(ctx, s.log, err, entries(input)...)
		return result, err
	}
	if dispatch.SentAt.IsPresent {
		s.log.Info(ctx, "Dispatch already sent, skipping delivery.", entries(input)...)
		return result, nil
	}

	entry, ok, err := s.lookupEntry(ctx, input)
	if err != nil {
		return result, err
	}
	if !ok {
		return result, nil
	}

	recipient, err := s.recipients.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, notification.ErrRecipientNotRegistered) {
			s.log.Warning(ctx, "Recipient is not registered, skipping delivery.", entries(input)...)
			return result, nil
		}
		logging.Error(ctx, s.log, err, entries(input)...)
		return result, err
	}

	err = s.sender.Send(ctx, recipient, notification.Notification{
		UserID:  input.UserID,
		Title:   entry.Title,
		Message: entry.Message,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, entries(input)...)
		return result, err
	}

	marked, err := s.dispatches.MarkSent(ctx, input.EntryID, input.FireAt, s.now())
	if err != nil {
		logging.Error(ctx, s.log, err, entries(input)...)
		return result, err
	}
	if !marked {
		s.log.Warning(ctx, "Dispatch was marked sent concurrently.", entries(input)...)
	}

	if err := s.chainNextOccurrence(ctx, entry, input); err != nil {
		return result, err
	}

	s.log.Info(ctx, "Notification successfully sent.", entries(input)...)
	result.Sent = true
	return result, nil
}

func (s *service) lookupEntry(ctx context.Context, input Input) (reminder.Entry, bool, error) {
	doc, err := s.documents.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, reminder.ErrDocumentDoesNotExist) {
			s.log.Info(ctx, "Reminder document is gone, skipping delivery.", entries(input)...)
			return reminder.Entry{}, false, nil
		}
		logging.Error(ctx, s.log, err, entries(input)...)
		return reminder.Entry{}, false, err
	}

	entry, ok := doc.EntryByID(input.EntryID)
	if !ok {
		s.log.Info(ctx, "Reminder entry is gone, skipping delivery.", entries(input)...)
		return reminder.Entry{}, false, nil
	}
	// The entry was rescheduled after this occurrence was armed.
	if !entry.At.Equal(input.FireAt) && entry.Repeat == reminder.RepeatNone {
		s.log.Info(ctx, "Reminder entry was rescheduled, skipping delivery.", entries(input)...)
		return reminder.Entry{}, false, nil
	}
	return entry, true, nil
}

func (s *service) chainNextOccurrence(ctx context.Context, entry reminder.Entry, input Input) error {
	nextAt, ok := entry.Repeat.NextFrom(input.FireAt)
	if !ok {
		return nil
	}
	created, err := s.dispatches.Create(ctx, reminder.CreateDispatchInput{
		EntryID: input.EntryID,
		UserID:  input.UserID,
		FireAt:  nextAt,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, entries(input)...)
		return err
	}
	if created {
		s.log.Info(
			ctx,
			"Next occurrence created.",
			logging.Entry("entryID", input.EntryID),
			logging.Entry("fireAt", nextAt),
		)
	}
	return nil
}

func entries(input Input) []logging.LogEntry {
	return []logging.LogEntry{
		logging.Entry("entryID", input.EntryID),
		logging.Entry("userID", input.UserID),
		logging.Entry("fireAt", input.FireAt),
	}
}
