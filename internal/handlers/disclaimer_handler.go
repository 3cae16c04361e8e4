package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"advocate_site/internal/disclaimer"
)

const flagCookieMaxAge = 365 * 24 * time.Hour

// DisclaimerHandler handles acknowledgement of the legal notice
type DisclaimerHandler struct {
	ctrl          *disclaimer.Controller
	secureCookies bool
}

// NewDisclaimerHandler creates a new DisclaimerHandler
func NewDisclaimerHandler(ctrl *disclaimer.Controller, secureCookies bool) *DisclaimerHandler {
	return &DisclaimerHandler{ctrl: ctrl, secureCookies: secureCookies}
}

// Acknowledge persists the flag and hides the modal. A failed server-side
// write is logged by the controller; the cookie still hides the modal.
func (h *DisclaimerHandler) Acknowledge(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     disclaimer.FlagKey,
		Value:    disclaimer.FlagValue,
		MaxAge:   int(flagCookieMaxAge.Seconds()),
		Path:     "/",
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	_ = h.ctrl.Acknowledge(c.Request().Context(), visitorID(c))

	if isHTMX(c) {
		// empty body: htmx swaps the modal out
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, safeReturnPath(c.FormValue("return")))
}
