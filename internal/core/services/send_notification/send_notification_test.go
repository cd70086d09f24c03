package sendnotification

import (
	"context"
	"errors"
	"testing"
	"time"
	c "wellness/internal/core/domain/common"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/notification"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"

	"github.com/stretchr/testify/require"
)

const USER_ID = user.ID("user-1")

var Now = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	service    services.Service[Input, Result]
	documents  *reminder.TestDocumentRepository
	dispatches *reminder.TestDispatchRepository
	recipients *notification.TestRecipientRepository
	sender     *notification.TestSender
}

func setup() env {
	documents := reminder.NewTestDocumentRepository()
	dispatches := reminder.NewTestDispatchRepository()
	recipients := notification.NewTestRecipientRepository()
	sender := notification.NewTestSender()
	service := New(
		logging.NewFakeLogger(),
		documents,
		dispatches,
		recipients,
		sender,
		func() time.Time { return Now },
	)
	return env{
		service:    service,
		documents:  documents,
		dispatches: dispatches,
		recipients: recipients,
		sender:     sender,
	}
}

func (v env) seed(t *testing.T, repeat reminder.Repeat, fireAt time.Time) Input {
	t.Helper()
	ctx := context.Background()
	entry := reminder.Entry{
		ID:        "entry-1",
		Type:      "water",
		Title:     "Hydrate",
		Message:   "Drink a glass of water",
		At:        fireAt,
		Repeat:    repeat,
		CreatedAt: fireAt.Add(-time.Hour),
	}
	_, err := v.documents.Append(ctx, USER_ID, entry)
	require.Nil(t, err)
	_, err = v.dispatches.Create(ctx, reminder.CreateDispatchInput{
		EntryID:     entry.ID,
		UserID:      USER_ID,
		FireAt:      fireAt,
		ScheduledAt: c.NewOptional(fireAt.Add(-time.Minute), true),
	})
	require.Nil(t, err)
	err = v.recipients.Set(ctx, notification.Recipient{
		UserID: USER_ID,
		Token:  c.NewOptional(notification.DeviceToken("device-token"), true),
	})
	require.Nil(t, err)
	return Input{EntryID: entry.ID, UserID: USER_ID, FireAt: fireAt}
}

func TestHappyPathSendsAndMarksSent(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)

	// Exercise ---
	result, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.True(result.Sent)
	assert.Len(v.sender.Sent, 1)
	assert.Equal("Hydrate", v.sender.Sent[0].Notification.Title)
	assert.Equal("Drink a glass of water", v.sender.Sent[0].Notification.Message)

	dispatch, err := v.dispatches.Get(context.Background(), input.EntryID, input.FireAt)
	assert.Nil(err)
	assert.True(dispatch.SentAt.IsPresent)
	assert.Equal(Now, dispatch.SentAt.Value)
}

func TestMissingDispatchSkipsDelivery(t *testing.T) {
	v := setup()

	result, err := v.service.Run(context.Background(), Input{
		EntryID: "missing", UserID: USER_ID, FireAt: Now,
	})

	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Sent)
	assert.Empty(v.sender.Sent)
}

func TestAlreadySentDispatchIsNotSentAgain(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)
	marked, err := v.dispatches.MarkSent(context.Background(), input.EntryID, input.FireAt, Now)
	require.Nil(t, err)
	require.True(t, marked)

	// Exercise ---
	result, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Sent)
	assert.Empty(v.sender.Sent)
}

func TestDeletedEntrySkipsDelivery(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)
	err := v.documents.Delete(context.Background(), USER_ID)
	require.Nil(t, err)

	// Exercise ---
	result, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Sent)
	assert.Empty(v.sender.Sent)
}

func TestRescheduledEntrySkipsDelivery(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)
	doc := v.documents.Documents[USER_ID]
	doc.Entries[0].At = Now.Add(time.Hour)

	// Exercise ---
	result, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Sent)
	assert.Empty(v.sender.Sent)
}

func TestUnregisteredRecipientSkipsDelivery(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)
	delete(v.recipients.Recipients, USER_ID)

	// Exercise ---
	result, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Sent)
	assert.Empty(v.sender.Sent)
}

func TestSendErrorIsReturnedAndNothingIsMarked(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)
	v.sender.SendError = errors.New("gateway is down")

	// Exercise ---
	_, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.NotNil(err)
	dispatch, err := v.dispatches.Get(context.Background(), input.EntryID, input.FireAt)
	assert.Nil(err)
	assert.False(dispatch.SentAt.IsPresent)
}

func TestDailyEntryChainsNextOccurrence(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatDaily, Now)

	// Exercise ---
	result, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.True(result.Sent)

	next, err := v.dispatches.Get(context.Background(), input.EntryID, Now.AddDate(0, 0, 1))
	assert.Nil(err)
	assert.False(next.ScheduledAt.IsPresent)
	assert.False(next.SentAt.IsPresent)
}

func TestNonRepeatingEntryDoesNotChain(t *testing.T) {
	// Setup ---
	v := setup()
	input := v.seed(t, reminder.RepeatNone, Now)

	// Exercise ---
	_, err := v.service.Run(context.Background(), input)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	_, err = v.dispatches.Get(context.Background(), input.EntryID, Now.AddDate(0, 0, 1))
	assert.ErrorIs(err, reminder.ErrDispatchDoesNotExist)
}
