package handlers

import (
	"advocate_site/internal/scrollspy"
)

// SpyRequest is a scroll event reported by the browser: the scroll offset,
// the section currently highlighted and the measured section boxes.
type SpyRequest struct {
	ScrollY  float64         `json:"scroll_y" form:"scroll_y"`
	Section  string          `json:"section" form:"section"`
	Menu     string          `json:"menu" form:"menu"`
	Sections []scrollspy.Box `json:"sections"`
	// Layout carries Sections JSON-encoded when the request is form-encoded
	Layout string `json:"-" form:"layout"`
}

// SpyResponse is the JSON answer of the scroll-spy API
type SpyResponse struct {
	Active  string `json:"active"`
	Matched bool   `json:"matched"`
}
