package listreminders

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

type Result struct {
	// Grouped maps entry type to the entries of that type in insertion
	// order. An existing document with no entries yields an empty map.
	Grouped map[string][]reminder.Entry
}

type service struct {
	log       logging.Logger
	documents reminder.DocumentRepository
}

func New(log logging.Logger, documents reminder.DocumentRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if documents == nil {
		panic(e.NewNilArgumentError("documents"))
	}
	return &service{log: log, documents: documents}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID.IsZero() {
		return result, user.ErrUserDoesNotExist
	}

	doc, err := s.documents.Get(ctx, input.UserID)
	if err != nil {
		return result, err
	}

	result.Grouped = doc.GroupByType()
	s.log.Info(
		ctx,
		"Reminders successfully listed.",
		logging.Entry("userID", input.UserID),
		logging.Entry("typeCount", len(result.Grouped)),
	)
	return result, nil
}
