// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/velora/content-studio/internal/handler"
	"github.com/velora/content-studio/internal/middleware"
)

// Register mounts every route on the Echo instance.  The auth endpoints are
// public; the content endpoints require a valid session token and run behind
// the session middleware.
func Register(e *echo.Echo, a *handler.AuthHandler, ct *handler.ContentHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/api/auth")
	auth.POST("/signup", a.Signup)
	auth.POST("/login", a.Login)
	auth.GET("/validate", a.Validate)

	api := e.Group("/api", middleware.SessionAuth(jwtSecret))
	api.POST("/generate", ct.Generate)
	api.GET("/history", ct.HistoryList)
	api.GET("/history/:id", ct.HistoryByID)
	api.POST("/download", ct.Download)
}
