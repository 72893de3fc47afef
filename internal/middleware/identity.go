package middleware

import (
	"context"
	"net/http"
)

// CallerIDKey is the context key for the verified caller identity.
const CallerIDKey = contextKey("caller-id")

// CallerIDHeader carries the caller identity set by the API gateway after
// token validation. This service never validates credentials itself.
const CallerIDHeader = "X-User-ID"

// Identity copies the gateway-verified caller identity from the request
// header into the request context. Requests without the header pass through
// with an empty caller; access control is enforced upstream.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID := r.Header.Get(CallerIDHeader)
		ctx := context.WithValue(r.Context(), CallerIDKey, callerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCallerID extracts the caller identity from the context.
// Returns empty string if not found.
func GetCallerID(ctx context.Context) string {
	if callerID, ok := ctx.Value(CallerIDKey).(string); ok {
		return callerID
	}
	return ""
}
