package auth

import (
	"context"
	"net/http"
	"wellness/internal/core/domain/user"
)

const (
	USER_ID_HEADER  = "X-User-ID"
	USER_ID_MAX_LEN = 128
)

type contextKey string

const CONTEXT_USER_ID_KEY = contextKey("userID")

// ParseUserID reads the identity set by the upstream gateway. Requests
// arriving without it are anonymous and rejected by the handlers.
func ParseUserID(r *http.Request) (userID user.ID, ok bool) {
	header := r.Header.Get(USER_ID_HEADER)
	if header == "" || len(header) > USER_ID_MAX_LEN {
		return userID, false
	}
	return user.ID(header), true
}

func SetUserIDToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ParseUserID(r)
		if ok {
			ctx := context.WithValue(r.Context(), CONTEXT_USER_ID_KEY, userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// UserID returns the identity from the context, or the zero ID when absent.
func UserID(ctx context.Context) user.ID {
	userID, ok := ctx.Value(CONTEXT_USER_ID_KEY).(user.ID)
	if !ok {
		return ""
	}
	return userID
}
