package viewmealplan

import (
	"errors"
	"net/http"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/mealplan"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
	service "wellness/internal/core/services/view_meal_plan"
	"wellness/internal/http/handlers/auth"
	"wellness/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	MealData []response.MealPlanEntry `json:"meal_data"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{UserID: auth.UserID(r.Context())})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, mealplan.ErrEmptyMealPlan):
			response.RenderFailure(rw, "empty meal plan, add a meal plan first", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderSuccess(
		rw,
		"Meal plan fetched successfully",
		Result{MealData: response.MealPlanEntries(result.Details)},
		http.StatusOK,
	)
}
