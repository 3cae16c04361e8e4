package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the page, fragments and API on e
func RegisterRoutes(e *echo.Echo, site *SiteHandler, disclaimer *DisclaimerHandler) {
	e.GET("/", site.Home)
	e.GET("/healthz", site.Health)

	// HTMX fragments
	partials := e.Group("/partials")
	partials.GET("/nav", site.Navigation)
	partials.POST("/nav/spy", site.Spy)
	partials.GET("/expertise/:index", site.ExpertiseTab)

	e.POST("/api/scrollspy", site.ScrollSpy)
	e.POST("/disclaimer/acknowledge", disclaimer.Acknowledge)
}
