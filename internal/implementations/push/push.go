package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/notification"
)

type pushRequest struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GatewaySender posts notifications to the push gateway in front of the
// platform messaging services.
type GatewaySender struct {
	log        logging.Logger
	httpClient http.Client
	gatewayURL string
	authToken  string
}

func New(log logging.Logger, gatewayURL string, authToken string, timeout time.Duration) *GatewaySender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if gatewayURL == "" {
		panic("gatewayURL must not be empty")
	}
	return &GatewaySender{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		gatewayURL: gatewayURL,
		authToken:  authToken,
	}
}

func (s *GatewaySender) Push(
	ctx context.Context,
	token notification.DeviceToken,
	n notification.Notification,
) error {
	requestBody, err := json.Marshal(pushRequest{
		To:    string(token),
		Title: n.Title,
		Body:  n.Message,
	})
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.gatewayURL,
		strings.NewReader(string(requestBody)),
	)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if s.authToken != "" {
		request.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	response, err := s.httpClient.Do(request)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", n.UserID))
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("push gateway responded with status %d", response.StatusCode)
		logging.Error(ctx, s.log, err, logging.Entry("userID", n.UserID))
		return err
	}

	s.log.Info(ctx, "Push notification delivered to gateway.", logging.Entry("userID", n.UserID))
	return nil
}
