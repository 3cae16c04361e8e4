package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"advocate_site/internal/content"
	"advocate_site/internal/disclaimer"
	"advocate_site/internal/schedule"
	"advocate_site/internal/scrollspy"
	"advocate_site/internal/view"
	"advocate_site/web/pages"
)

const consultationSlots = 3

// SiteHandler serves the page and its HTMX fragments
type SiteHandler struct {
	site       *content.Site
	desk       *schedule.Desk
	disclaimer *disclaimer.Controller
	logger     *zap.Logger
	now        func() time.Time
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(site *content.Site, desk *schedule.Desk, ctrl *disclaimer.Controller, logger *zap.Logger) *SiteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteHandler{site: site, desk: desk, disclaimer: ctrl, logger: logger, now: time.Now}
}

// HomeProps assembles everything the page needs for a view state
func (h *SiteHandler) HomeProps(state view.State, returnPath string) pages.HomeProps {
	now := h.now()

	global := pages.GlobalProps{Desk: h.site.GlobalDesk}
	if h.desk != nil {
		global.Clocks = h.desk.Clocks(now)
		global.Slots = h.desk.NextSlots(now, consultationSlots)
	}

	return pages.HomeProps{
		Title:          h.site.Title,
		Site:           h.site,
		Nav:            pages.NewNavProps(h.site, state),
		Expertise:      pages.NewExpertiseProps(h.site, state.ActiveTab),
		Global:         global,
		Disclaimer:     pages.DisclaimerProps{Notice: h.site.Disclaimer, Return: returnPath},
		ShowDisclaimer: state.ShowDisclaimer,
	}
}

// Home renders the full page. Query parameters select the section, tab and menu state.
func (h *SiteHandler) Home(c echo.Context) error {
	state := view.FromQuery(c.QueryParams(), len(h.site.Expertise.Areas))

	modal := h.disclaimer.State(
		c.Request().Context(),
		cookieValue(c, disclaimer.FlagKey),
		visitorID(c),
	)
	state.ShowDisclaimer = modal == disclaimer.Shown

	return render(c, http.StatusOK, pages.Home(h.HomeProps(state, requestPath(c.Request()))))
}

// Navigation returns the nav fragment for ?section=&menu=
func (h *SiteHandler) Navigation(c echo.Context) error {
	state := view.FromQuery(c.QueryParams(), len(h.site.Expertise.Areas))
	return render(c, http.StatusOK, pages.Navigation(pages.NewNavProps(h.site, state)))
}

// Spy resolves a scroll event and returns the nav fragment with the active section highlighted
func (h *SiteHandler) Spy(c echo.Context) error {
	req, err := bindSpyRequest(c)
	if err != nil {
		return err
	}

	state := view.State{ActiveSection: view.DefaultSection}
	state.Navigate(req.Section)
	state.MobileMenuOpen = req.Menu == "open"

	state.ActiveSection = scrollspy.Resolve(state.ActiveSection, scrollspy.NewLayout(req.Sections), req.ScrollY)

	return render(c, http.StatusOK, pages.Navigation(pages.NewNavProps(h.site, state)))
}

// ScrollSpy is the JSON form of Spy
func (h *SiteHandler) ScrollSpy(c echo.Context) error {
	req, err := bindSpyRequest(c)
	if err != nil {
		return err
	}

	active, matched := scrollspy.Active(scrollspy.NewLayout(req.Sections), req.ScrollY)
	if !matched {
		active = req.Section
		if !scrollspy.IsSection(active) {
			active = view.DefaultSection
		}
	}
	return c.JSON(http.StatusOK, SpyResponse{Active: active, Matched: matched})
}

// ExpertiseTab returns the tab list with the area at :index selected
func (h *SiteHandler) ExpertiseTab(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Practice area not found")
	}
	if _, ok := h.site.Area(index); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Practice area not found")
	}
	return render(c, http.StatusOK, pages.ExpertiseTabs(pages.NewExpertiseProps(h.site, index)))
}

// Health reports liveness
func (h *SiteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func bindSpyRequest(c echo.Context) (SpyRequest, error) {
	var req SpyRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid scroll event")
	}
	if req.Layout != "" {
		if err := json.Unmarshal([]byte(req.Layout), &req.Sections); err != nil {
			return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid section layout")
		}
	}
	return req, nil
}
