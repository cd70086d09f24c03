package listreminders

import (
	"errors"
	"net/http"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
	service "wellness/internal/core/services/list_reminders"
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
	Reminders map[string][]response.GroupedEntry `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{UserID: auth.UserID(r.Context())})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrDocumentDoesNotExist):
			response.RenderFailure(rw, "Reminders not found", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderSuccess(
		rw,
		"Reminders fetched successfully",
		Result{Reminders: response.GroupedEntries(result.Grouped)},
		http.StatusOK,
	)
}
