package notification

import (
	"context"
	"sync"
	"wellness/internal/core/domain/user"
)

type TestRecipientRepository struct {
	Recipients map[user.ID]Recipient
	GetError   error
	SetError   error
	lock       sync.Mutex
}

func NewTestRecipientRepository() *TestRecipientRepository {
	return &TestRecipientRepository{Recipients: make(map[user.ID]Recipient)}
}

func (r *TestRecipientRepository) Get(ctx context.Context, userID user.ID) (Recipient, error) {
	if r.GetError != nil {
		return Recipient{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	recipient, ok := r.Recipients[userID]
	if !ok {
		return Recipient{}, ErrRecipientNotRegistered
	}
	return recipient, nil
}

func (r *TestRecipientRepository) Set(ctx context.Context, recipient Recipient) error {
	if r.SetError != nil {
		return r.SetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Recipients[recipient.UserID] = recipient
	return nil
}

type SentNotification struct {
	Recipient    Recipient
	Notification Notification
}

type TestSender struct {
	Sent      []SentNotification
	SendError error
	lock      sync.Mutex
}

func NewTestSender() *TestSender {
	return &TestSender{}
}

func (s *TestSender) Send(ctx context.Context, recipient Recipient, n Notification) error {
	if s.SendError != nil {
		return s.SendError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentNotification{Recipient: recipient, Notification: n})
	return nil
}
