package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"catalog-admin/internal/catalog"
	"catalog-admin/internal/console"
	"catalog-admin/internal/middleware"
)

// LoginPage renders the sign-in form, including any pending notice from a
// failed attempt or an expired session.
func LoginPage(store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := store.Snapshot()
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Notice": view.Notice,
		})
	}
}

// Login exchanges the posted credentials for a session token. Success persists
// the token in the session cookie with the server-supplied absolute expiry and
// lands on the product table, which triggers the initial page-1 fetch. Failure
// stays on the login form with a visible notice.
func Login(client *catalog.Client, store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")
		if username == "" || password == "" {
			store.SetNotice("username and password are required")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		result, err := client.SignIn(c.Request.Context(), username, password)
		if err != nil {
			zap.S().Warnf("sign-in failed for %s: %v", username, err)
			store.SetNotice("sign-in failed, check your credentials")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:    middleware.SessionCookie,
			Value:   result.Token,
			Path:    "/",
			Expires: parseExpiry(result.Expired),
		})
		zap.S().Infof("sign-in succeeded for %s", username)
		c.Redirect(http.StatusFound, "/products")
	}
}

// parseExpiry accepts the expiry as RFC 3339 or as an epoch value, since
// tenants have returned both. Unparseable input falls back to a short-lived
// cookie rather than a session-only one.
func parseExpiry(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	if epoch, err := cast.ToInt64E(raw); err == nil && epoch > 0 {
		if epoch > 1e12 {
			return time.UnixMilli(epoch)
		}
		return time.Unix(epoch, 0)
	}
	zap.S().Warnf("unparseable token expiry %q", raw)
	return time.Now().Add(2 * time.Hour)
}
