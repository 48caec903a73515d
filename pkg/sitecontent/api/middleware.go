package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/render"
)

// RequireBearerToken rejects requests whose Authorization header does not
// carry the configured admin token. The comparison is constant time.
func RequireBearerToken(token string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(auth, expected) != 1 {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, ErrorResponse{Error: "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
