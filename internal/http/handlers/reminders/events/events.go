package events

import (
	"net/http"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/http/handlers/auth"
	"wellness/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID.IsZero() {
		response.RenderUnauthorized(rw)
		return
	}

	streamID := r.URL.Query().Get("stream")
	if streamID != string(userID) {
		response.RenderFailure(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from reminder events.",
			logging.Entry("userID", userID),
		)
		h.sseServer.RemoveStream(streamID)
	}()

	h.sseServer.CreateStream(streamID)
	h.log.Info(
		r.Context(),
		"Subscribed to reminder events.",
		logging.Entry("userID", userID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
