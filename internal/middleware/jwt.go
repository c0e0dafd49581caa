// Package middleware contains reusable HTTP middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velora/content-studio/internal/utils"
)

// SessionAuth returns an Echo middleware that validates a Bearer session
// token and stores the token's user id in the request context under
// "user_id".  The error bodies mirror the validate endpoint so every
// protected route speaks the same contract.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(auth, " ", 2)
			if auth == "" || len(parts) < 2 || parts[1] == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No token provided"})
			}
			userID, err := utils.ParseSessionToken(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
