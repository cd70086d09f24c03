package reminder

import (
	"context"
	"sync"
	"time"
	"wellness/internal/core/domain/user"
)

type TestDocumentRepository struct {
	Documents   map[user.ID]*Document
	AppendError error
	GetError    error
	UpdateError error
	DeleteError error
	lock        sync.Mutex
}

func NewTestDocumentRepository() *TestDocumentRepository {
	return &TestDocumentRepository{Documents: make(map[user.ID]*Document)}
}

func (r *TestDocumentRepository) Append(ctx context.Context, userID user.ID, entry Entry) (Document, error) {
	if r.AppendError != nil {
		return Document{}, r.AppendError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	doc, ok := r.Documents[userID]
	if !ok {
		doc = &Document{UserID: userID}
		r.Documents[userID] = doc
	}
	doc.Entries = append(doc.Entries, entry)
	return *doc, nil
}

func (r *TestDocumentRepository) Get(ctx context.Context, userID user.ID) (Document, error) {
	if r.GetError != nil {
		return Document{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	doc, ok := r.Documents[userID]
	if !ok {
		return Document{}, ErrDocumentDoesNotExist
	}
	return *doc, nil
}

func (r *TestDocumentRepository) UpdateEntry(ctx context.Context, userID user.ID, entry Entry) (Document, error) {
	if r.UpdateError != nil {
		return Document{}, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	doc, ok := r.Documents[userID]
	if !ok {
		return Document{}, ErrDocumentDoesNotExist
	}
	for ix := range doc.Entries {
		if doc.Entries[ix].ID == entry.ID {
			doc.Entries[ix] = entry
			return *doc, nil
		}
	}
	return Document{}, ErrEntryDoesNotExist
}

func (r *TestDocumentRepository) Delete(ctx context.Context, userID user.ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Documents[userID]; !ok {
		return ErrDocumentDoesNotExist
	}
	delete(r.Documents, userID)
	return nil
}

type dispatchKey struct {
	entryID EntryID
	fireAt  time.Time
}

type TestDispatchRepository struct {
	Dispatches    map[dispatchKey]*Dispatch
	CreateError   error
	GetError      error
	ScheduleError error
	MarkSentError error
	DeleteError   error
	lock          sync.Mutex
}

func NewTestDispatchRepository() *TestDispatchRepository {
	return &TestDispatchRepository{Dispatches: make(map[dispatchKey]*Dispatch)}
}

func (r *TestDispatchRepository) Create(ctx context.Context, input CreateDispatchInput) (bool, error) {
	if r.CreateError != nil {
		return false, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	key := dispatchKey{entryID: input.EntryID, fireAt: input.FireAt}
	if _, ok := r.Dispatches[key]; ok {
		return false, nil
	}
	r.Dispatches[key] = &Dispatch{
		EntryID:     input.EntryID,
		UserID:      input.UserID,
		FireAt:      input.FireAt,
		ScheduledAt: input.ScheduledAt,
	}
	return true, nil
}

func (r *TestDispatchRepository) Get(ctx context.Context, entryID EntryID, fireAt time.Time) (Dispatch, error) {
	if r.GetError != nil {
		return Dispatch{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	d, ok := r.Dispatches[dispatchKey{entryID: entryID, fireAt: fireAt}]
	if !ok {
		return Dispatch{}, ErrDispatchDoesNotExist
	}
	return *d, nil
}

func (r *TestDispatchRepository) Schedule(ctx context.Context, input ScheduleDispatchesInput) ([]Dispatch, error) {
	if r.ScheduleError != nil {
		return nil, r.ScheduleError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	claimed := make([]Dispatch, 0)
	for _, d := range r.Dispatches {
		if d.ScheduledAt.IsPresent || d.SentAt.IsPresent || d.FireAt.After(input.AtBefore) {
			continue
		}
		d.ScheduledAt.Value = input.ScheduledAt
		d.ScheduledAt.IsPresent = true
		claimed = append(claimed, *d)
	}
	return claimed, nil
}

func (r *TestDispatchRepository) MarkSent(
	ctx context.Context,
	entryID EntryID,
	fireAt time.Time,
	sentAt time.Time,
) (bool, error) {
	if r.MarkSentError != nil {
		return false, r.MarkSentError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	d, ok := r.Dispatches[dispatchKey{entryID: entryID, fireAt: fireAt}]
	if !ok || d.SentAt.IsPresent {
		return false, nil
	}
	d.SentAt.Value = sentAt
	d.SentAt.IsPresent = true
	return true, nil
}

func (r *TestDispatchRepository) DeletePendingByEntry(ctx context.Context, entryID EntryID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for key, d := range r.Dispatches {
		if d.EntryID == entryID && !d.SentAt.IsPresent {
			delete(r.Dispatches, key)
		}
	}
	return nil
}

func (r *TestDispatchRepository) DeletePendingByUser(ctx context.Context, userID user.ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for key, d := range r.Dispatches {
		if d.UserID == userID && !d.SentAt.IsPresent {
			delete(r.Dispatches, key)
		}
	}
	return nil
}

func (r *TestDispatchRepository) Pending() []Dispatch {
	r.lock.Lock()
	defer r.lock.Unlock()
	pending := make([]Dispatch, 0)
	for _, d := range r.Dispatches {
		if !d.SentAt.IsPresent {
			pending = append(pending, *d)
		}
	}
	return pending
}

type TestScheduler struct {
	Scheduled []Dispatch
	Error     error
	lock      sync.Mutex
}

func NewTestScheduler() *TestScheduler {
	return &TestScheduler{}
}

func (s *TestScheduler) ScheduleDispatch(ctx context.Context, d Dispatch) error {
	if s.Error != nil {
		return s.Error
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Scheduled = append(s.Scheduled, d)
	return nil
}
