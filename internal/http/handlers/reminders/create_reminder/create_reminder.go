package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/localtime"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
	service "wellness/internal/core/services/create_reminder"
	"wellness/internal/http/handlers/auth"
	"wellness/internal/http/handlers/response"

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
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Repeat  string `json:"repeat"`
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
		validation.Field(&i.Type, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Message, validation.Required, validation.Length(1, 1024)),
		validation.Field(&i.Time, validation.Required),
		validation.Field(&i.Repeat, validation.In("", "none", "daily")),
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

	repeat := reminder.RepeatNone
	if input.Repeat != "" {
		parsed, err := reminder.ParseRepeat(input.Repeat)
		if err != nil {
			response.RenderFailure(rw, err.Error(), http.StatusBadRequest)
			return
		}
		repeat = parsed
	}
	at, err := localtime.Normalize(input.Time, localtime.DEFAULT_OFFSET_MINUTES)
	if err != nil {
		response.RenderFailure(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			UserID:  auth.UserID(r.Context()),
			Type:    input.Type,
			Title:   input.Title,
			Message: input.Message,
			At:      at,
			Repeat:  repeat,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case isExpectedError(err):
			response.RenderFailure(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	entry := response.Entry{}
	entry.FromDomainEntry(result.Entry)
	response.RenderSuccess(rw, "Reminder created successfully", Result{Reminder: entry}, http.StatusCreated)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, reminder.ErrParseRepeat) ||
		errors.Is(err, reminder.ErrEntryTimeIsNotUTC))
}
