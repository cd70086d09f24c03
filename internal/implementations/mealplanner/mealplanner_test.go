package mealplanner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/mealplan"

	"github.com/stretchr/testify/require"
)

func TestConnectReturnsAccount(t *testing.T) {
	// Setup ---
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/connect", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		var body map[string]string
		require.Nil(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "user@test.com", body["username"])

		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"username":"sp-user","hash":"sp-hash"}`))
	}))
	defer server.Close()
	generator := New(logging.NewFakeLogger(), server.URL, "test-key", time.Second)

	// Exercise ---
	account, err := generator.Connect(context.Background(), "user@test.com")

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("sp-user", account.Username)
	assert.Equal("sp-hash", account.Hash)
}

func TestGenerateReturnsPayload(t *testing.T) {
	// Setup ---
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mealplanner/generate", r.URL.Path)
		require.Equal(t, "week", r.URL.Query().Get("timeFrame"))
		require.Equal(t, "2000", r.URL.Query().Get("targetCalories"))
		require.Equal(t, "vegetarian", r.URL.Query().Get("diet"))
		require.Equal(t, "sp-hash", r.URL.Query().Get("hash"))

		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"meals":[{"id":1}]}`))
	}))
	defer server.Close()
	generator := New(logging.NewFakeLogger(), server.URL, "test-key", time.Second)

	// Exercise ---
	payload, err := generator.Generate(
		context.Background(),
		mealplan.Account{Username: "sp-user", Hash: "sp-hash"},
		mealplan.GenerateParams{TimeFrame: "week", TargetCalories: "2000", Diet: "vegetarian"},
	)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.JSONEq(`{"meals":[{"id":1}]}`, string(payload))
}

func TestTransientFailureIsRetried(t *testing.T) {
	// Setup ---
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			rw.WriteHeader(http.StatusBadGateway)
			return
		}
		rw.Write([]byte(`{"meals":[]}`))
	}))
	defer server.Close()
	generator := New(logging.NewFakeLogger(), server.URL, "test-key", time.Second)

	// Exercise ---
	payload, err := generator.Generate(context.Background(), mealplan.Account{}, mealplan.GenerateParams{
		TimeFrame: "day", TargetCalories: "1800", Diet: "paleo",
	})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.JSONEq(`{"meals":[]}`, string(payload))
	assert.Equal(int32(2), atomic.LoadInt32(&calls))
}

func TestClientErrorIsNotRetried(t *testing.T) {
	// Setup ---
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		rw.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()
	generator := New(logging.NewFakeLogger(), server.URL, "test-key", time.Second)

	// Exercise ---
	_, err := generator.Generate(context.Background(), mealplan.Account{}, mealplan.GenerateParams{
		TimeFrame: "day", TargetCalories: "1800", Diet: "paleo",
	})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, mealplan.ErrServiceUnavailable)
	assert.Equal(int32(1), atomic.LoadInt32(&calls))
}

func TestExhaustedRetriesFail(t *testing.T) {
	// Setup ---
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()
	generator := New(logging.NewFakeLogger(), server.URL, "test-key", time.Second)

	// Exercise ---
	_, err := generator.Generate(context.Background(), mealplan.Account{}, mealplan.GenerateParams{
		TimeFrame: "day", TargetCalories: "1800", Diet: "paleo",
	})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, mealplan.ErrServiceUnavailable)
	assert.Equal(int32(MAX_ATTEMPTS), atomic.LoadInt32(&calls))
}

func TestMissingAPIKeyFailsWithoutRequest(t *testing.T) {
	generator := New(logging.NewFakeLogger(), "http://localhost:0", "", time.Second)

	_, err := generator.Connect(context.Background(), "user@test.com")

	require.ErrorIs(t, err, mealplan.ErrDataNotReceived)
}
