package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS builds the browser CORS policy from the configured allowed
// origins. Credentials are allowed because the front-end sends the bearer
// token in the Authorization header.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   h.corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
	})

	return c.Handler
}
