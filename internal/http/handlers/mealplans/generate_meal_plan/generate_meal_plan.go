package generatemealplan

import (
	"errors"
	"net/http"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/mealplan"
	ratelimiter "wellness/internal/core/domain/rate_limiter"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
	service "wellness/internal/core/services/generate_meal_plan"
	"wellness/internal/http/handlers/auth"
	"wellness/internal/http/handlers/response"
)

type Handler struct {
	service   services.Service[service.Input, service.Result]
	userEmail string
}

func New(
	service services.Service[service.Input, service.Result],
	userEmail string,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, userEmail: userEmail}
}

type Result struct {
	MealPlan response.MealPlanEntry `json:"meal_data"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.service.Run(
		r.Context(),
		service.Input{
			UserID:         auth.UserID(r.Context()),
			UserEmail:      h.userEmail,
			TimeFrame:      query.Get("timeFrame"),
			TargetCalories: query.Get("targetCalories"),
			Exclude:        query.Get("exclude"),
			Diet:           query.Get("diet"),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, mealplan.ErrDataNotReceived):
			response.RenderFailure(rw, "data not received", http.StatusBadRequest)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, mealplan.ErrServiceUnavailable), errors.Is(err, mealplan.ErrEmptyMealPlan):
			response.RenderFailure(rw, "failed to generate meal plan", http.StatusBadGateway)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderSuccess(
		rw,
		"New meal plan added successfully",
		Result{MealPlan: response.MealPlanEntry{MealPlan: result.Plan.Plan}},
		http.StatusCreated,
	)
}
