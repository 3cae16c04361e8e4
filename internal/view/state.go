package view

import (
	"net/url"
	"strconv"

	"advocate_site/internal/scrollspy"
)

// DefaultSection is active when nothing else is requested
const DefaultSection = "hero"

// State is the transient view state of one page render
type State struct {
	ActiveSection  string
	MobileMenuOpen bool
	ActiveTab      int
	ShowDisclaimer bool
}

// FromQuery reads section, menu and tab from query parameters.
// Unknown sections fall back to DefaultSection, out-of-range tabs to 0.
func FromQuery(q url.Values, tabs int) State {
	s := State{ActiveSection: DefaultSection}
	s.Navigate(q.Get("section"))
	s.MobileMenuOpen = q.Get("menu") == "open"
	if tab, err := strconv.Atoi(q.Get("tab")); err == nil {
		s.SelectTab(tab, tabs)
	}
	return s
}

// Navigate activates a section and closes the mobile overlay.
// Unknown ids leave the active section unchanged.
func (s *State) Navigate(section string) {
	if !scrollspy.IsSection(section) {
		return
	}
	s.ActiveSection = section
	s.MobileMenuOpen = false
}

// SelectTab picks a practice area. Out-of-range indexes reset to 0.
func (s *State) SelectTab(i, tabs int) {
	if i < 0 || i >= tabs {
		s.ActiveTab = 0
		return
	}
	s.ActiveTab = i
}

// Query encodes the state back into query parameters, omitting defaults
func (s State) Query() url.Values {
	q := url.Values{}
	if s.ActiveSection != DefaultSection {
		q.Set("section", s.ActiveSection)
	}
	if s.MobileMenuOpen {
		q.Set("menu", "open")
	}
	if s.ActiveTab != 0 {
		q.Set("tab", strconv.Itoa(s.ActiveTab))
	}
	return q
}
