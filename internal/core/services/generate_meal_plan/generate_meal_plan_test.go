package generatemealplan

import (
	"context"
	"testing"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/mealplan"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"

	"github.com/stretchr/testify/require"
)

const USER_ID = user.ID("user-1")

func setup() (services.Service[Input, Result], *mealplan.TestGenerator, *mealplan.TestRepository) {
	generator := mealplan.NewTestGenerator()
	plans := mealplan.NewTestRepository()
	service := New(logging.NewFakeLogger(), generator, plans)
	return service, generator, plans
}

func validInput() Input {
	return Input{
		UserID:         USER_ID,
		UserEmail:      "user@test.com",
		TimeFrame:      "week",
		TargetCalories: "2000",
		Exclude:        "shellfish",
		Diet:           "vegetarian",
	}
}

func TestMissingParametersFailWithoutOutboundCall(t *testing.T) {
	service, generator, _ := setup()
	for name, mutate := range map[string]func(*Input){
		"email":    func(i *Input) { i.UserEmail = "" },
		"frame":    func(i *Input) { i.TimeFrame = "" },
		"calories": func(i *Input) { i.TargetCalories = "" },
		"diet":     func(i *Input) { i.Diet = "" },
	} {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			mutate(&input)

			_, err := service.Run(context.Background(), input)

			require.ErrorIs(t, err, mealplan.ErrDataNotReceived)
			require.Empty(t, generator.ConnectedWith)
		})
	}
}

func TestMissingExcludeIsAccepted(t *testing.T) {
	// Setup ---
	service, _, _ := setup()
	input := validInput()
	input.Exclude = ""

	// Exercise ---
	_, err := service.Run(context.Background(), input)

	// Verify ---
	require.Nil(t, err)
}

func TestGeneratedPlanReplacesStoredDocument(t *testing.T) {
	// Setup ---
	service, generator, plans := setup()
	err := plans.Put(context.Background(), USER_ID, []mealplan.PlanEntry{
		{Plan: []byte(`{"meals":["stale"]}`)},
	})
	require.Nil(t, err)

	// Exercise ---
	result, err := service.Run(context.Background(), validInput())

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.JSONEq(string(generator.Payload), string(result.Plan.Plan))

	doc, err := plans.Get(context.Background(), USER_ID)
	assert.Nil(err)
	assert.Len(doc.Details, 1)
	assert.JSONEq(string(generator.Payload), string(doc.Details[0].Plan))

	assert.Equal([]string{"user@test.com"}, generator.ConnectedWith)
	assert.Len(generator.GeneratedWith, 1)
	assert.Equal("vegetarian", generator.GeneratedWith[0].Diet)
}

func TestGeneratorFailureIsPropagated(t *testing.T) {
	// Setup ---
	service, generator, plans := setup()
	generator.GenerateError = mealplan.ErrServiceUnavailable

	// Exercise ---
	_, err := service.Run(context.Background(), validInput())

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, mealplan.ErrServiceUnavailable)
	_, err = plans.Get(context.Background(), USER_ID)
	assert.ErrorIs(err, mealplan.ErrDocumentDoesNotExist)
}

func TestRateLimitKeyIsScopedToUser(t *testing.T) {
	require.Equal(t, "generate_meal_plan:user-1", validInput().GetRateLimitKey())
}
