package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the one piece of persisted client state: the opaque bearer
// token issued at sign-in, replayed on every authenticated call.
const SessionCookie = "loginToken"

const tokenKey = "sessionToken"

// Session gates console pages on the presence of the session cookie. Absent
// cookie means the login view, with no network call; a present cookie is only
// stashed for handlers — whether it is still valid is the remote API's call,
// not ours.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || strings.TrimSpace(token) == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

// Token returns the session token stashed by Session.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}
