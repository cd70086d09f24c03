package createreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	service "wellness/internal/core/services/create_reminder"
	"wellness/internal/http/handlers/auth"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Entry = reminder.Entry{
		ID:        "entry-1",
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		At:        input.At,
		Repeat:    input.Repeat,
		CreatedAt: input.At,
	}
	return result, nil
}

func serve(stub *stubService, body string, withIdentity bool) *httptest.ResponseRecorder {
	handler := New(stub)
	request := httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(body))
	if withIdentity {
		ctx := context.WithValue(request.Context(), auth.CONTEXT_USER_ID_KEY, user.ID("user-1"))
		request = request.WithContext(ctx)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestCreateReminderHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
	}{
		{
			id:             "valid input",
			body:           `{"type":"water","title":"Hydrate","message":"Drink water","time":"2023-05-01T18:30:00Z","repeat":"daily"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "repeat defaults to none",
			body:           `{"type":"water","title":"Hydrate","message":"Drink water","time":"2023-05-01T18:30:00Z"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "missing type",
			body:           `{"title":"Hydrate","message":"Drink water","time":"2023-05-01T18:30:00Z"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing time",
			body:           `{"type":"water","title":"Hydrate","message":"Drink water"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid repeat",
			body:           `{"type":"water","title":"Hydrate","message":"Drink water","time":"2023-05-01T18:30:00Z","repeat":"weekly"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid time",
			body:           `{"type":"water","title":"Hydrate","message":"Drink water","time":"not-a-time"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			recorder := serve(&stubService{}, testcase.body, true)

			require.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestTimeIsNormalizedFromLocalWallClock(t *testing.T) {
	// Setup ---
	stub := &stubService{}

	// Exercise ---
	recorder := serve(
		stub,
		`{"type":"water","title":"Hydrate","message":"Drink water","time":"2023-05-01T18:30:00Z"}`,
		true,
	)

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusCreated, recorder.Code)
	assert.NotNil(stub.input)
	assert.Equal(user.ID("user-1"), stub.input.UserID)
	assert.Equal(time.Date(2023, 5, 1, 13, 0, 0, 0, time.UTC), stub.input.At)
	assert.Equal(reminder.RepeatNone, stub.input.Repeat)
}

func TestMissingIdentityIsUnauthorized(t *testing.T) {
	stub := &stubService{err: user.ErrUserDoesNotExist}

	recorder := serve(
		stub,
		`{"type":"water","title":"Hydrate","message":"Drink water","time":"2023-05-01T18:30:00Z"}`,
		false,
	)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}
