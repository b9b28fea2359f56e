package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows every origin, method and header with credentials. The origin is
// reflected rather than answered with "*", which browsers reject when
// credentials are involved.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return c.Handler
}
