package middleware

import (
	"context"
	"net/http"
	"net/url"

	"hr-records/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session"
	LoginPath     = "/login"
)

// SessionVerifier resolves a session cookie value into the signed-in user.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (userID, role string, err error)
}

// SessionAuth lets requests with a valid session through and sends everyone
// else to the login page, remembering where they were going.
func SessionAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		userID, role, err := verifier.VerifySession(c.Request.Context(), token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("user_id", userID)
		c.Set("role", role)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func LoginURL(next string) string {
	if next == "" {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(next)
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
	c.Abort()
}

// SafeNext returns next when it is a local path, otherwise fallback.
func SafeNext(next, fallback string) string {
	if len(next) < 1 || next[0] != '/' {
		return fallback
	}
	if len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return fallback
	}
	return next
}
