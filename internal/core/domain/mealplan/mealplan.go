package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"wellness/internal/core/domain/user"
)

var (
	ErrDocumentDoesNotExist = errors.New("meal plan document does not exist")
	ErrEmptyMealPlan        = errors.New("meal plan is empty")
	ErrDataNotReceived      = errors.New("data not received")
	ErrServiceUnavailable   = errors.New("meal planning service unavailable")
)

// PlanEntry wraps the opaque payload returned by the external planner.
type PlanEntry struct {
	Plan json.RawMessage `json:"mealPlan"`
}

type Document struct {
	UserID  user.ID
	Details []PlanEntry
}

type Repository interface {
	// Put replaces the user's detail list, creating the document when
	// absent. Generation keeps only the latest plan.
	Put(ctx context.Context, userID user.ID, details []PlanEntry) error
	Get(ctx context.Context, userID user.ID) (Document, error)
}

type GenerateParams struct {
	TimeFrame      string
	TargetCalories string
	Exclude        string
	Diet           string
}

// Account is the external handle established by the planner's connect step.
type Account struct {
	Username string
	Hash     string
}

type Generator interface {
	Connect(ctx context.Context, email string) (Account, error)
	Generate(ctx context.Context, account Account, params GenerateParams) (json.RawMessage, error)
}
