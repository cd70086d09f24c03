package deletereminders

import (
	"context"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
)

type Input struct {
	UserID user.ID
}

type Result struct{}

type service struct {
	log        logging.Logger
	documents  reminder.DocumentRepository
	dispatches reminder.DispatchRepository
}

func New(
	log logging.Logger,
	documents reminder.DocumentRepository,
	dispatches reminder.DispatchRepository,
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
	return &service{log: log, documents: documents, dispatches: dispatches}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID.IsZero() {
		return result, user.ErrUserDoesNotExist
	}

	if err := s.documents.Delete(ctx, input.UserID); err != nil {
		return result, err
	}
	// No stale jobs may survive the delete.
	if err := s.dispatches.DeletePendingByUser(ctx, input.UserID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(ctx, "Reminder document deleted.", logging.Entry("userID", input.UserID))
	return result, nil
}
