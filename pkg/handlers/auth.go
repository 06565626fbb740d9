package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/asiet-labs/festbot/pkg/apperrors"
)

// RequireBearer wraps a handler with a bearer token check. An empty expected
// token disables the endpoint entirely rather than leaving it open.
func RequireBearer(expected string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if expected == "" {
			_ = ErrorResponse(w, http.StatusForbidden, "forbidden", apperrors.ErrSyncDisabled.Error())
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			w.Header().Set("WWW-Authenticate", "Bearer")
			_ = ErrorResponse(w, http.StatusUnauthorized, "unauthorized", "invalid authentication token")
			return
		}

		next(w, r)
	}
}
