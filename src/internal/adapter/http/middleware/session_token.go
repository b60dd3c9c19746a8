package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/logger"
)

const SessionTokenHeader = "X-Session-Token"

type sessionTokenKey struct{}

// RequireSessionToken rejects requests without a session token header and
// stores the token on the request context. Whether the token is live is the
// session service's call.
func RequireSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(SessionTokenHeader))
		if token == "" {
			logger.Info("session token middleware missing token", logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			http.Error(w, "session token required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionTokenKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}
