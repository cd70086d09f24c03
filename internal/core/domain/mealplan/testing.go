package mealplan

import (
	"context"
	"encoding/json"
	"sync"
	"wellness/internal/core/domain/user"
)

type TestRepository struct {
	Documents map[user.ID]Document
	PutError  error
	GetError  error
	lock      sync.Mutex
}

func NewTestRepository() *TestRepository {
	return &TestRepository{Documents: make(map[user.ID]Document)}
}

func (r *TestRepository) Put(ctx context.Context, userID user.ID, details []PlanEntry) error {
	if r.PutError != nil {
		return r.PutError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Documents[userID] = Document{UserID: userID, Details: details}
	return nil
}

func (r *TestRepository) Get(ctx context.Context, userID user.ID) (Document, error) {
	if r.GetError != nil {
		return Document{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	doc, ok := r.Documents[userID]
	if !ok {
		return Document{}, ErrDocumentDoesNotExist
	}
	return doc, nil
}

type TestGenerator struct {
	Account        Account
	Payload        json.RawMessage
	ConnectError   error
	GenerateError  error
	ConnectedWith  []string
	GeneratedWith  []GenerateParams
	lock           sync.Mutex
}

func NewTestGenerator() *TestGenerator {
	return &TestGenerator{
		Account: Account{Username: "test", Hash: "test-hash"},
		Payload: json.RawMessage(`{"meals":[]}`),
	}
}

func (g *TestGenerator) Connect(ctx context.Context, email string) (Account, error) {
	if g.ConnectError != nil {
		return Account{}, g.ConnectError
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.ConnectedWith = append(g.ConnectedWith, email)
	return g.Account, nil
}

func (g *TestGenerator) Generate(
	ctx context.Context,
	account Account,
	params GenerateParams,
) (json.RawMessage, error) {
	if g.GenerateError != nil {
		return nil, g.GenerateError
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.GeneratedWith = append(g.GeneratedWith, params)
	return g.Payload, nil
}
