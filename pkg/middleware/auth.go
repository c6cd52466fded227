package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/foodmart/pkg/auth"
	"github.com/shashiranjanraj/foodmart/pkg/response"
)

// Auth guards protected routes. Verification fails open to "no claims":
// a missing header, malformed header, bad signature, and an expired token
// all produce the same 401 envelope, so the client never learns which.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := verifyRequest(r)
		if claims == nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}

// verifyRequest extracts and verifies the bearer token, returning nil on
// any failure.
func verifyRequest(r *http.Request) *auth.Claims {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}
