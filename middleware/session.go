package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ohio-order/models"
	"ohio-order/repositories"
	"ohio-order/utils"
)

const sessionContextKey = "table_session"

// SessionMiddleware reads the table session from the signed session cookie,
// or from a raw X-Session-Id header sent by API clients, and stores it on the
// request context. Requests without a session pass through untouched.
func SessionMiddleware(cookieName, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			if sess, err := utils.ValidateSessionToken(token, secret); err == nil {
				c.Set(sessionContextKey, sess)
				c.Next()
				return
			}
		}

		if sessionID := strings.TrimSpace(c.GetHeader(repositories.SessionHeader)); sessionID != "" {
			c.Set(sessionContextKey, models.Session{ID: sessionID})
		}
		c.Next()
	}
}

func CurrentSession(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(models.Session); ok {
			return sess
		}
	}
	return models.Session{}
}

// RequirePageSession sends diners without a table session to the login page.
func RequirePageSession(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Valid() {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAPISession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Valid() {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "No session found",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
