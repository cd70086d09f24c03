package response

import (
	"encoding/json"
	"wellness/internal/core/domain/mealplan"
)

type MealPlanEntry struct {
	MealPlan json.RawMessage `json:"mealPlan"`
}

func MealPlanEntries(details []mealplan.PlanEntry) []MealPlanEntry {
	entries := make([]MealPlanEntry, len(details))
	for ix, detail := range details {
		entries[ix] = MealPlanEntry{MealPlan: detail.Plan}
	}
	return entries
}
