package notificationsender

import (
	"context"
	"errors"
	"testing"
	c "wellness/internal/core/domain/common"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/notification"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/require"
)

type fakePushSender struct {
	pushed []notification.DeviceToken
	err    error
}

func (s *fakePushSender) Push(
	ctx context.Context,
	token notification.DeviceToken,
	n notification.Notification,
) error {
	if s.err != nil {
		return s.err
	}
	s.pushed = append(s.pushed, token)
	return nil
}

type fakeEmailSender struct {
	emailed []string
	err     error
}

func (s *fakeEmailSender) Email(ctx context.Context, address string, n notification.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.emailed = append(s.emailed, address)
	return nil
}

func setup() (*Sender, *fakePushSender, *fakeEmailSender) {
	pushSender := &fakePushSender{}
	emailSender := &fakeEmailSender{}
	sender := New(logging.NewFakeLogger(), pushSender, emailSender, sse.New())
	return sender, pushSender, emailSender
}

var testNotification = notification.Notification{
	UserID:  "user-1",
	Title:   "Hydrate",
	Message: "Drink a glass of water",
}

func TestTokenHolderGetsPush(t *testing.T) {
	// Setup ---
	sender, pushSender, emailSender := setup()
	recipient := notification.Recipient{
		UserID: "user-1",
		Token:  c.NewOptional(notification.DeviceToken("device-token"), true),
		Email:  c.NewOptional("user@test.com", true),
	}

	// Exercise ---
	err := sender.Send(context.Background(), recipient, testNotification)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]notification.DeviceToken{"device-token"}, pushSender.pushed)
	assert.Empty(emailSender.emailed)
}

func TestEmailFallbackWithoutToken(t *testing.T) {
	// Setup ---
	sender, pushSender, emailSender := setup()
	recipient := notification.Recipient{
		UserID: "user-1",
		Email:  c.NewOptional("user@test.com", true),
	}

	// Exercise ---
	err := sender.Send(context.Background(), recipient, testNotification)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Empty(pushSender.pushed)
	assert.Equal([]string{"user@test.com"}, emailSender.emailed)
}

func TestNoChannelFailsDelivery(t *testing.T) {
	sender, _, _ := setup()

	err := sender.Send(context.Background(), notification.Recipient{UserID: "user-1"}, testNotification)

	require.ErrorIs(t, err, notification.ErrNoDeliveryChannel)
}

func TestPushErrorIsPropagated(t *testing.T) {
	// Setup ---
	sender, pushSender, _ := setup()
	pushSender.err = errors.New("gateway is down")
	recipient := notification.Recipient{
		UserID: "user-1",
		Token:  c.NewOptional(notification.DeviceToken("device-token"), true),
	}

	// Exercise ---
	err := sender.Send(context.Background(), recipient, testNotification)

	// Verify ---
	require.NotNil(t, err)
}
