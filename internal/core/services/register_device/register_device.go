package registerdevice

import (
	"context"
	"errors"
	c "wellness/internal/core/domain/common"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/notification"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
)

type Input struct {
	UserID user.ID
	Token  notification.DeviceToken
	Email  c.Optional[string]
}

type Result struct {
	Recipient notification.Recipient
}

type service struct {
	log        logging.Logger
	recipients notification.RecipientRepository
}

func New(log logging.Logger, recipients notification.RecipientRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if recipients == nil {
		panic(e.NewNilArgumentError("recipients"))
	}
	return &service{log: log, recipients: recipients}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID.IsZero() {
		return result, user.ErrUserDoesNotExist
	}

	recipient := notification.Recipient{
		UserID: input.UserID,
		Token:  c.NewOptional(input.Token, input.Token != ""),
		Email:  input.Email,
	}
	// A re-registration without an email keeps the one on record.
	if !recipient.Email.IsPresent {
		existing, err := s.recipients.Get(ctx, input.UserID)
		if err != nil && !errors.Is(err, notification.ErrRecipientNotRegistered) {
			logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
			return result, err
		}
		recipient.Email = existing.Email
	}

	if err := s.recipients.Set(ctx, recipient); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Device successfully registered.",
		logging.Entry("userID", input.UserID),
		logging.Entry("hasToken", recipient.Token.IsPresent),
	)
	result.Recipient = recipient
	return result, nil
}
