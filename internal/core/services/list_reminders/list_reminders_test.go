package listreminders

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

func TestListWithoutDocumentFails(t *testing.T) {
	service := New(logging.NewFakeLogger(), reminder.NewTestDocumentRepository())

	_, err := service.Run(context.Background(), Input{UserID: USER_ID})

	require.ErrorIs(t, err, reminder.ErrDocumentDoesNotExist)
}

func TestListGroupsEntriesByType(t *testing.T) {
	// Setup ---
	documents := reminder.NewTestDocumentRepository()
	for _, entry := range []reminder.Entry{
		{ID: "a", Type: "water", At: Now, Repeat: reminder.RepeatNone},
		{ID: "b", Type: "medication", At: Now, Repeat: reminder.RepeatDaily},
		{ID: "c", Type: "water", At: Now, Repeat: reminder.RepeatNone},
	} {
		_, err := documents.Append(context.Background(), USER_ID, entry)
		require.Nil(t, err)
	}
	service := New(logging.NewFakeLogger(), documents)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: USER_ID})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(result.Grouped, 2)
	assert.Len(result.Grouped["water"], 2)
	assert.Equal(reminder.EntryID("a"), result.Grouped["water"][0].ID)
	assert.Equal(reminder.EntryID("c"), result.Grouped["water"][1].ID)
	assert.Len(result.Grouped["medication"], 1)
}

func TestEmptyDocumentYieldsEmptyMapping(t *testing.T) {
	// Setup ---
	documents := reminder.NewTestDocumentRepository()
	documents.Documents[USER_ID] = &reminder.Document{UserID: USER_ID}
	service := New(logging.NewFakeLogger(), documents)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: USER_ID})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.NotNil(result.Grouped)
	assert.Empty(result.Grouped)
}
