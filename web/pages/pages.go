// Package pages exposes the embedded html/templates as templ components.
// Every page is a clone of the shared layout and partials, so pages can
// define their own blocks without clashing.
package pages

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sync"

	"github.com/a-h/templ"

	"advocate_site/internal/content"
	"advocate_site/internal/schedule"
	"advocate_site/internal/view"
	"advocate_site/web"
)

// Renderer holds the parsed template sets
type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"sectionHref": sectionHref,
	"menuHref":    menuHref,
	"tabHref":     tabHref,
	"ordinal":     func(i int) string { return fmt.Sprintf("%02d", i+1) },
}

// NewRenderer parses layouts and partials from fsys and clones them once per page
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(fsys, "templates/layouts/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{base: base, pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", file, err)
		}
		if _, err := page.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", file, err)
		}
		r.pages[path.Base(file)] = page
	}
	return r, nil
}

// Page renders a full page through the "base" layout
func (r *Renderer) Page(name string, data any) templ.Component {
	tmpl, ok := r.pages[name]
	if !ok {
		return errorComponent(fmt.Errorf("template not found: %s", name))
	}
	return templ.FromGoHTML(tmpl.Lookup("base"), data)
}

// Partial renders a single named block without the layout
func (r *Renderer) Partial(name string, data any) templ.Component {
	tmpl := r.base.Lookup(name)
	if tmpl == nil {
		return errorComponent(fmt.Errorf("partial not found: %s", name))
	}
	return templ.FromGoHTML(tmpl, data)
}

func errorComponent(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return err
	})
}

var defaultRenderer = sync.OnceValues(func() (*Renderer, error) {
	return NewRenderer(web.Files)
})

func render(fn func(r *Renderer) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := defaultRenderer()
		if err != nil {
			return err
		}
		return fn(r).Render(ctx, w)
	})
}

// NavProps feeds the navigation partial
type NavProps struct {
	Brand content.Brand
	Items []content.NavItem
	CTA   content.NavItem
	State view.State
}

// ExpertiseProps feeds the practice-area tabs. Current is the selected area.
type ExpertiseProps struct {
	Heading       string
	HeadingAccent string
	Areas         []content.PracticeArea
	Active        int
	Current       *content.PracticeArea
}

// GlobalProps feeds the international desk
type GlobalProps struct {
	Desk   content.GlobalDesk
	Clocks []schedule.ZoneTime
	Slots  []schedule.Slot
}

// DisclaimerProps feeds the modal. Return is where a non-HTMX acknowledgement redirects.
type DisclaimerProps struct {
	Notice content.Notice
	Return string
}

// HomeProps feeds the single page
type HomeProps struct {
	Title          string
	Site           *content.Site
	Nav            NavProps
	Expertise      ExpertiseProps
	Global         GlobalProps
	Disclaimer     DisclaimerProps
	ShowDisclaimer bool
}

// ErrorPageProps feeds the error page
type ErrorPageProps struct {
	Title        string
	Code         int
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

// NewNavProps builds navigation props for a state
func NewNavProps(site *content.Site, state view.State) NavProps {
	return NavProps{Brand: site.Brand, Items: site.Nav, CTA: site.CTA, State: state}
}

// NewExpertiseProps builds tab props with the given area selected
func NewExpertiseProps(site *content.Site, active int) ExpertiseProps {
	props := ExpertiseProps{
		Heading:       site.Expertise.Heading,
		HeadingAccent: site.Expertise.HeadingAccent,
		Areas:         site.Expertise.Areas,
		Active:        active,
	}
	if area, ok := site.Area(active); ok {
		props.Current = &area
	}
	return props
}

// Home renders the whole site
func Home(props HomeProps) templ.Component {
	return render(func(r *Renderer) templ.Component { return r.Page("home.html", props) })
}

// ErrorPage renders an error inside the site layout
func ErrorPage(props ErrorPageProps) templ.Component {
	return render(func(r *Renderer) templ.Component { return r.Page("error.html", props) })
}

// Navigation renders the nav bar on its own, for HTMX swaps
func Navigation(props NavProps) templ.Component {
	return render(func(r *Renderer) templ.Component { return r.Partial("nav", props) })
}

// ExpertiseTabs renders the tab list and the selected panel, for HTMX swaps
func ExpertiseTabs(props ExpertiseProps) templ.Component {
	return render(func(r *Renderer) templ.Component { return r.Partial("expertise-tabs", props) })
}

func sectionHref(section string) string {
	s := view.State{ActiveSection: section}
	q := s.Query().Encode()
	if q == "" {
		return "/#" + section
	}
	return "/?" + q + "#" + section
}

func menuHref(section string, open bool) string {
	s := view.State{ActiveSection: section, MobileMenuOpen: open}
	q := s.Query().Encode()
	if q == "" {
		return "/"
	}
	return "/?" + q
}

func tabHref(i int) string {
	s := view.State{ActiveSection: "expertise", ActiveTab: i}
	return "/?" + s.Query().Encode() + "#expertise"
}
