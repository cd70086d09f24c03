package editreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "wellness/internal/core/domain/common"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/localtime"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
	service "wellness/internal/core/services/edit_reminder"
	"wellness/internal/http/handlers/auth"
	"wellness/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Type    *string `json:"type"`
	Title   *string `json:"title"`
	Message *string `json:"message"`
	Time    *string `json:"time"`
	Repeat  *string `json:"repeat"`
}

type Result struct {
	Reminder response.Entry `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Length(1, 64)),
		validation.Field(&i.Title, validation.Length(1, 256)),
		validation.Field(&i.Message, validation.Length(1, 1024)),
		validation.Field(&i.Repeat, validation.In("none", "daily")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderFailure(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{
		UserID:  auth.UserID(r.Context()),
		EntryID: reminder.EntryID(chi.URLParam(r, "entryID")),
	}
	if input.Type != nil {
		serviceInput.Type = c.NewOptional(*input.Type, true)
	}
	if input.Title != nil {
		serviceInput.Title = c.NewOptional(*input.Title, true)
	}
	if input.Message != nil {
		serviceInput.Message = c.NewOptional(*input.Message, true)
	}
	if input.Time != nil {
		at, err := localtime.Normalize(*input.Time, localtime.DEFAULT_OFFSET_MINUTES)
		if err != nil {
			response.RenderFailure(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.At = c.NewOptional(at, true)
	}
	if input.Repeat != nil {
		repeat, err := reminder.ParseRepeat(*input.Repeat)
		if err != nil {
			response.RenderFailure(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.Repeat = c.NewOptional(repeat, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrDocumentDoesNotExist), errors.Is(err, reminder.ErrEntryDoesNotExist):
			response.RenderFailure(rw, "Reminder not found", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	entry := response.Entry{}
	entry.FromDomainEntry(result.Entry)
	response.RenderSuccess(rw, "Reminder updated successfully", Result{Reminder: entry}, http.StatusOK)
}
