package deletereminders

import (
	"context"
	"testing"
	"time"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

const USER_ID = user.ID("user-1")

var Now = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

func TestDeleteWithoutDocumentFails(t *testing.T) {
	// Setup ---
	documents := reminder.NewTestDocumentRepository()
	dispatches := reminder.NewTestDispatchRepository()
	service := New(logging.NewFakeLogger(), documents, dispatches)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{UserID: USER_ID})

	// Verify ---
	require.ErrorIs(t, err, reminder.ErrDocumentDoesNotExist)
}

func TestDeleteRemovesDocumentAndPendingDispatches(t *testing.T) {
	// Setup ---
	documents := reminder.NewTestDocumentRepository()
	dispatches := reminder.NewTestDispatchRepository()
	_, err := documents.Append(context.Background(), USER_ID, reminder.Entry{
		ID: "a", Type: "water", At: Now.Add(time.Hour), Repeat: reminder.RepeatNone,
	})
	require.Nil(t, err)
	_, err = dispatches.Create(context.Background(), reminder.CreateDispatchInput{
		EntryID: "a", UserID: USER_ID, FireAt: Now.Add(time.Hour),
	})
	require.Nil(t, err)
	service := New(logging.NewFakeLogger(), documents, dispatches)

	// Exercise ---
	_, err = service.Run(context.Background(), Input{UserID: USER_ID})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	_, err = documents.Get(context.Background(), USER_ID)
	assert.ErrorIs(err, reminder.ErrDocumentDoesNotExist)
	assert.Empty(dispatches.Pending())
}
