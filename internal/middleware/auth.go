package middleware

import (
	"context"
	"net/http"

	"github.com/rohanjx/workouthub-backend/internal/models"
	"github.com/rohanjx/workouthub-backend/internal/services"
	"github.com/rohanjx/workouthub-backend/pkg/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

type contextKey string

const userContextKey contextKey = "user"

// SessionToken extracts and verifies the signed session token from the
// request cookie. Returns ("", false) when absent or tampered with.
func SessionToken(r *http.Request, secret string) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	return utils.VerifySignedValue(secret, cookie.Value)
}

// UserFrom returns the authenticated user injected by RequireAuth.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}

// WithUser returns a context carrying the given user. Exposed for tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// RequireAuth resolves the session to a user and injects it into the request
// context. Anonymous requests are redirected to the login page; personalized
// data is never served without a valid session.
func RequireAuth(auth *services.AuthService, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := SessionToken(r, secret)
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			user, err := auth.CurrentUser(r.Context(), token)
			if err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
