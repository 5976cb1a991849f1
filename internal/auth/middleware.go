package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// AnonymousID is the user id applied to requests that carry no valid session
// token. Routes stay usable without signing in; usage is simply pooled under
// one identity.
const AnonymousID = "current-user"

// Middleware resolves an optional Bearer token into request-scoped claims.
// Missing or invalid tokens do not reject the request.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if claims, err := s.ParseToken(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), contextKey{}, claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the claims attached by Middleware. Anonymous requests get
// the shared fallback identity at level 1.
func UserFrom(ctx context.Context) Claims {
	if claims, ok := ctx.Value(contextKey{}).(Claims); ok {
		return claims
	}
	return Claims{KoreanLevel: 1}
}

// UserIDFrom returns the authenticated user id, or AnonymousID.
func UserIDFrom(ctx context.Context) string {
	claims := UserFrom(ctx)
	if claims.Subject != "" {
		return claims.Subject
	}
	return AnonymousID
}
