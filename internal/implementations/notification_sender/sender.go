package notificationsender

import (
	"context"
	"encoding/json"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/notification"

	"github.com/r3labs/sse/v2"
)

// Sender fans a notification out to the recipient's channels. Push is the
// primary channel, email is used when no device token is registered, and the
// event is always published to the user's live stream when one is open.
type Sender struct {
	log         logging.Logger
	pushSender  notification.PushSender
	emailSender notification.EmailSender
	sseServer   *sse.Server
}

func New(
	log logging.Logger,
	pushSender notification.PushSender,
	emailSender notification.EmailSender,
	sseServer *sse.Server,
) *Sender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if pushSender == nil {
		panic(e.NewNilArgumentError("pushSender"))
	}
	if emailSender == nil {
		panic(e.NewNilArgumentError("emailSender"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Sender{log: log, pushSender: pushSender, emailSender: emailSender, sseServer: sseServer}
}

func (s *Sender) Send(ctx context.Context, recipient notification.Recipient, n notification.Notification) error {
	s.publishLiveEvent(ctx, n)

	switch {
	case recipient.Token.IsPresent:
		if err := s.pushSender.Push(ctx, recipient.Token.Value, n); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", n.UserID))
			return err
		}
		s.log.Info(
			ctx,
			"Notification has been successfully sent to device.",
			logging.Entry("userID", n.UserID),
		)
		return nil
	case recipient.Email.IsPresent:
		if err := s.emailSender.Email(ctx, recipient.Email.Value, n); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", n.UserID))
			return err
		}
		s.log.Info(
			ctx,
			"Notification has been successfully sent by email.",
			logging.Entry("userID", n.UserID),
		)
		return nil
	default:
		s.log.Warning(ctx, "Recipient has no delivery channel.", logging.Entry("userID", n.UserID))
		return notification.ErrNoDeliveryChannel
	}
}

func (s *Sender) publishLiveEvent(ctx context.Context, n notification.Notification) {
	streamID := string(n.UserID)
	if !s.sseServer.StreamExists(streamID) {
		return
	}

	data, err := json.Marshal(map[string]string{"title": n.Title, "message": n.Message})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", n.UserID))
		return
	}
	s.sseServer.Publish(streamID, &sse.Event{Data: data})
	s.log.Info(ctx, "Live reminder event published.", logging.Entry("userID", n.UserID))
}
