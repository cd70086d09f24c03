package generatemealplan

import (
	"context"
	"fmt"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/mealplan"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
)

type Input struct {
	UserID         user.ID
	UserEmail      string
	TimeFrame      string
	TargetCalories string
	Exclude        string
	Diet           string
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("generate_meal_plan:%s", i.UserID)
}

type Result struct {
	Plan mealplan.PlanEntry
}

type service struct {
	log       logging.Logger
	generator mealplan.Generator
	plans     mealplan.Repository
}

func New(
	log logging.Logger,
	generator mealplan.Generator,
	plans mealplan.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if plans == nil {
		panic(e.NewNilArgumentError("plans"))
	}
	return &service{log: log, generator: generator, plans: plans}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID.IsZero() {
		return result, user.ErrUserDoesNotExist
	}
	// Exclude is the only optional generation parameter.
	if input.UserEmail == "" || input.TimeFrame == "" || input.TargetCalories == "" || input.Diet == "" {
		return result, mealplan.ErrDataNotReceived
	}

	account, err := s.generator.Connect(ctx, input.UserEmail)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	payload, err := s.generator.Generate(ctx, account, mealplan.GenerateParams{
		TimeFrame:      input.TimeFrame,
		TargetCalories: input.TargetCalories,
		Exclude:        input.Exclude,
		Diet:           input.Diet,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	if len(payload) == 0 {
		return result, mealplan.ErrEmptyMealPlan
	}

	entry := mealplan.PlanEntry{Plan: payload}
	if err := s.plans.Put(ctx, input.UserID, []mealplan.PlanEntry{entry}); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(ctx, "Meal plan successfully generated.", logging.Entry("userID", input.UserID))
	result.Plan = entry
	return result, nil
}
