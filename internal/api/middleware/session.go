package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/brickfolio/property-portfolio-backend/internal/api/response"
	"github.com/brickfolio/property-portfolio-backend/internal/auth"
)

type contextKey string

const ownerIDKey contextKey = "ownerID"

// Session validates an optional bearer session token. When a valid token is
// present, the owner ID it carries is stored on the request context and
// downstream handlers scope their results to that owner. Requests without a
// token pass through unscoped; a token that fails verification is rejected.
func Session(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			ownerID, err := sessions.VerifyToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid session token", err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), ownerIDKey, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerIDFromContext returns the owner ID bound by a verified session token,
// or an empty string when the request carried no token.
func OwnerIDFromContext(ctx context.Context) string {
	ownerID, _ := ctx.Value(ownerIDKey).(string)
	return ownerID
}
