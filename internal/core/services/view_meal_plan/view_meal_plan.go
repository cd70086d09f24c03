package viewmealplan

import (
	"context"
	"errors"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/mealplan"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Details []mealplan.PlanEntry
}

type service struct {
	log   logging.Logger
	plans mealplan.Repository
}

func New(log logging.Logger, plans mealplan.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if plans == nil {
		panic(e.NewNilArgumentError("plans"))
	}
	return &service{log: log, plans: plans}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID.IsZero() {
		return result, user.ErrUserDoesNotExist
	}

	doc, err := s.plans.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, mealplan.ErrDocumentDoesNotExist) {
			return result, mealplan.ErrEmptyMealPlan
		}
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	if len(doc.Details) == 0 {
		return result, mealplan.ErrEmptyMealPlan
	}

	result.Details = doc.Details
	return result, nil
}
