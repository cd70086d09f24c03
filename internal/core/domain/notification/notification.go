package notification

import (
	"context"
	"errors"
	c "wellness/internal/core/domain/common"
	"wellness/internal/core/domain/user"
)

var (
	ErrRecipientNotRegistered = errors.New("recipient is not registered")
	ErrNoDeliveryChannel      = errors.New("recipient has no delivery channel")
)

type DeviceToken string

// Recipient holds the delivery endpoints registered for a user. Push is the
// primary channel; email is the fallback when no device token is known.
type Recipient struct {
	UserID user.ID
	Token  c.Optional[DeviceToken]
	Email  c.Optional[string]
}

type RecipientRepository interface {
	Get(ctx context.Context, userID user.ID) (Recipient, error)
	Set(ctx context.Context, recipient Recipient) error
}

type Notification struct {
	UserID  user.ID
	Title   string
	Message string
}

type Sender interface {
	Send(ctx context.Context, recipient Recipient, n Notification) error
}

type PushSender interface {
	Push(ctx context.Context, token DeviceToken, n Notification) error
}

type EmailSender interface {
	Email(ctx context.Context, address string, n Notification) error
}
