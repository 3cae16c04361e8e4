package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	// VisitorCookie holds the anonymous visitor id
	VisitorCookie = "visitor_id"
	// VisitorKey is the echo context key of the visitor id
	VisitorKey = "visitorID"

	visitorMaxAge = 365 * 24 * time.Hour
)

// VisitorConfig configures the visitor middleware
type VisitorConfig struct {
	// Skipper defines requests that get no visitor id. Defaults to static
	// assets and the health check.
	Skipper echomw.Skipper
	Secure  bool
}

// DefaultVisitorSkipper skips static assets and the health check
func DefaultVisitorSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/static") || path == "/healthz"
}

// Visitor ensures every page request carries an anonymous visitor id, issuing
// a cookie on first contact.
func Visitor(secure bool) echo.MiddlewareFunc {
	return VisitorWithConfig(VisitorConfig{Secure: secure})
}

// VisitorWithConfig returns a Visitor middleware with config
func VisitorWithConfig(config VisitorConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultVisitorSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			id := ""
			if cookie, err := c.Cookie(VisitorCookie); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookie,
					Value:    id,
					MaxAge:   int(visitorMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   config.Secure,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(VisitorKey, id)
			return next(c)
		}
	}
}
