package middleware

import (
	"context"
	"net/http"
	"strings"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID accepts a caller-supplied X-Request-Id or mints a UUID, echoes it
// on the response and stores it where chi's Logger and GetReqID look for it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(chiMiddleware.RequestIDHeader))
		if reqID == "" || len(reqID) > maxRequestIDLength {
			reqID = uuid.NewString()
		}

		w.Header().Set(chiMiddleware.RequestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), chiMiddleware.RequestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	reqID := chiMiddleware.GetReqID(ctx)
	return reqID, reqID != ""
}
