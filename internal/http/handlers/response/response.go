package response

import (
	"encoding/json"
	"net/http"
)

// Body is the envelope every handler responds with. Domain failures keep the
// envelope with Success set to false; only the transport status varies.
type Body struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func RenderSuccess(rw http.ResponseWriter, msg string, data interface{}, status int) {
	Render(rw, Body{Message: msg, Success: true, Data: data}, status)
}

func RenderFailure(rw http.ResponseWriter, msg string, status int) {
	Render(rw, Body{Message: msg, Success: false}, status)
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderFailure(rw, "User not found", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderFailure(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderFailure(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
