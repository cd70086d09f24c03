package mealplanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/mealplan"
)

const (
	DEFAULT_BASE_URL = "https://api.spoonacular.com"
	MAX_ATTEMPTS     = 3
	RETRY_BACKOFF    = 500 * time.Millisecond
)

type connectResponse struct {
	Username string `json:"username"`
	Hash     string `json:"hash"`
}

func (r *connectResponse) FromJSON(reader io.Reader) error {
	decoder := json.NewDecoder(reader)
	return decoder.Decode(r)
}

// SpoonacularGenerator talks to the Spoonacular meal planner API. Transient
// failures are retried with a backoff before the whole call fails.
type SpoonacularGenerator struct {
	log        logging.Logger
	httpClient http.Client
	baseURL    string
	apiKey     string
}

func New(log logging.Logger, baseURL string, apiKey string, timeout time.Duration) *SpoonacularGenerator {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}
	return &SpoonacularGenerator{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (g *SpoonacularGenerator) Connect(ctx context.Context, email string) (mealplan.Account, error) {
	if g.apiKey == "" {
		return mealplan.Account{}, mealplan.ErrDataNotReceived
	}

	requestBody, err := json.Marshal(map[string]string{"username": email})
	if err != nil {
		return mealplan.Account{}, err
	}
	requestURL := fmt.Sprintf("%s/users/connect?apiKey=%s", g.baseURL, url.QueryEscape(g.apiKey))

	response, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(string(requestBody)))
		if err != nil {
			return nil, err
		}
		request.Header.Set("Content-Type", "application/json")
		return request, nil
	})
	if err != nil {
		return mealplan.Account{}, err
	}
	defer response.Body.Close()

	connected := connectResponse{}
	if err := connected.FromJSON(response.Body); err != nil {
		logging.Error(ctx, g.log, err)
		return mealplan.Account{}, mealplan.ErrServiceUnavailable
	}
	g.log.Info(ctx, "Connected to the meal planner.", logging.Entry("username", connected.Username))
	return mealplan.Account{Username: connected.Username, Hash: connected.Hash}, nil
}

func (g *SpoonacularGenerator) Generate(
	ctx context.Context,
	account mealplan.Account,
	params mealplan.GenerateParams,
) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("apiKey", g.apiKey)
	query.Set("timeFrame", params.TimeFrame)
	query.Set("targetCalories", params.TargetCalories)
	query.Set("exclude", params.Exclude)
	query.Set("diet", params.Diet)
	if account.Hash != "" {
		query.Set("hash", account.Hash)
	}
	requestURL := fmt.Sprintf("%s/mealplanner/generate?%s", g.baseURL, query.Encode())

	response, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}
		request.Header.Set("Content-Type", "application/json")
		return request, nil
	})
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		logging.Error(ctx, g.log, err)
		return nil, mealplan.ErrServiceUnavailable
	}
	if !json.Valid(payload) {
		g.log.Error(ctx, "Meal planner returned invalid JSON.")
		return nil, mealplan.ErrServiceUnavailable
	}
	return payload, nil
}

func (g *SpoonacularGenerator) doWithRetry(
	ctx context.Context,
	newRequest func() (*http.Request, error),
) (*http.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= MAX_ATTEMPTS; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(RETRY_BACKOFF * time.Duration(attempt-1)):
			}
		}

		request, err := newRequest()
		if err != nil {
			return nil, err
		}
		response, err := g.httpClient.Do(request)
		if err != nil {
			lastErr = err
			g.log.Warning(
				ctx,
				"Meal planner request failed.",
				logging.Entry("attempt", attempt),
				logging.Entry("err", err),
			)
			continue
		}
		if response.StatusCode >= http.StatusInternalServerError {
			response.Body.Close()
			lastErr = fmt.Errorf("meal planner responded with status %d", response.StatusCode)
			g.log.Warning(
				ctx,
				"Meal planner request failed.",
				logging.Entry("attempt", attempt),
				logging.Entry("status", response.StatusCode),
			)
			continue
		}
		if response.StatusCode >= http.StatusBadRequest {
			response.Body.Close()
			return nil, mealplan.ErrServiceUnavailable
		}
		return response, nil
	}

	logging.Error(ctx, g.log, lastErr)
	return nil, mealplan.ErrServiceUnavailable
}
