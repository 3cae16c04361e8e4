// Package content holds the site copy. The default copy is embedded from
// site.yaml; a replacement file can be supplied at startup.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"advocate_site/internal/scrollspy"
)

//go:embed site.yaml
var defaultSite []byte

type Brand struct {
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
}

// NavItem links a label to a page section
type NavItem struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

type Stat struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
}

type Hero struct {
	Badge          string   `yaml:"badge"`
	Headline       string   `yaml:"headline"`
	HeadlineAccent string   `yaml:"headline_accent"`
	Intro          []string `yaml:"intro"`
	PrimaryCTA     NavItem  `yaml:"primary_cta"`
	SecondaryCTA   NavItem  `yaml:"secondary_cta"`
	Stats          []Stat   `yaml:"stats"`
}

type Profile struct {
	Heading       string   `yaml:"heading"`
	HeadingAccent string   `yaml:"heading_accent"`
	CardTitle     string   `yaml:"card_title"`
	CardText      string   `yaml:"card_text"`
	ImageAlt      string   `yaml:"image_alt"`
	Paragraphs    []string `yaml:"paragraphs"`
	Highlights    []string `yaml:"highlights"`
}

// PracticeArea is one tab of the expertise section
type PracticeArea struct {
	Title       string   `yaml:"title"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
}

type Expertise struct {
	Heading       string         `yaml:"heading"`
	HeadingAccent string         `yaml:"heading_accent"`
	Areas         []PracticeArea `yaml:"areas"`
}

// Case is one notable judgment card
type Case struct {
	Year        string `yaml:"year"`
	Court       string `yaml:"court"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Judgments struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
	Cases   []Case `yaml:"cases"`
}

type Feature struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Zone is a city clock on the international desk. TimeZone is an IANA name.
type Zone struct {
	City     string `yaml:"city"`
	TimeZone string `yaml:"timezone"`
	Home     bool   `yaml:"home"`
}

type GlobalDesk struct {
	Badge      string    `yaml:"badge"`
	Heading    string    `yaml:"heading"`
	Intro      string    `yaml:"intro"`
	Features   []Feature `yaml:"features"`
	PanelTitle string    `yaml:"panel_title"`
	Zones      []Zone    `yaml:"zones"`
	SlotsTitle string    `yaml:"slots_title"`
	CallLabel  string    `yaml:"call_label"`
}

type ContactPoint struct {
	Icon  string   `yaml:"icon"`
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

type Contact struct {
	Heading       string         `yaml:"heading"`
	HeadingAccent string         `yaml:"heading_accent"`
	Intro         string         `yaml:"intro"`
	Points        []ContactPoint `yaml:"points"`
	Email         string         `yaml:"email"`
	LinkedIn      string         `yaml:"linkedin"`
	CaseTypes     []string       `yaml:"case_types"`
	SubmitLabel   string         `yaml:"submit_label"`
}

type Footer struct {
	Name       string `yaml:"name"`
	Subtitle   string `yaml:"subtitle"`
	Disclaimer string `yaml:"disclaimer"`
	Copyright  string `yaml:"copyright"`
}

// Notice is the one-time disclaimer modal
type Notice struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Button string `yaml:"button"`
}

// Site is the full copy of the page
type Site struct {
	Title      string     `yaml:"title"`
	Brand      Brand      `yaml:"brand"`
	Nav        []NavItem  `yaml:"nav"`
	CTA        NavItem    `yaml:"cta"`
	Hero       Hero       `yaml:"hero"`
	Profile    Profile    `yaml:"profile"`
	Expertise  Expertise  `yaml:"expertise"`
	Judgments  Judgments  `yaml:"judgments"`
	GlobalDesk GlobalDesk `yaml:"global_desk"`
	Contact    Contact    `yaml:"contact"`
	Footer     Footer     `yaml:"footer"`
	Disclaimer Notice     `yaml:"disclaimer"`
}

// Area returns the practice area at index i
func (s *Site) Area(i int) (PracticeArea, bool) {
	if i < 0 || i >= len(s.Expertise.Areas) {
		return PracticeArea{}, false
	}
	return s.Expertise.Areas[i], true
}

// Default parses the embedded copy
func Default() (*Site, error) {
	return Load(bytes.NewReader(defaultSite))
}

// LoadFile parses copy from a YAML file
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses and validates copy from r
func Load(r io.Reader) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks that every link targets a known section and that the
// expertise tabs and desk clocks are not empty.
func (s *Site) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for _, item := range s.Nav {
		if !scrollspy.IsSection(item.Section) {
			errs = append(errs, fmt.Errorf("nav %q: unknown section %q", item.Label, item.Section))
		}
		if seen[item.Section] {
			errs = append(errs, fmt.Errorf("nav %q: duplicate section %q", item.Label, item.Section))
		}
		seen[item.Section] = true
	}

	for _, link := range []NavItem{s.CTA, s.Hero.PrimaryCTA, s.Hero.SecondaryCTA} {
		if link.Section != "" && !scrollspy.IsSection(link.Section) {
			errs = append(errs, fmt.Errorf("link %q: unknown section %q", link.Label, link.Section))
		}
	}

	if len(s.Expertise.Areas) == 0 {
		errs = append(errs, errors.New("expertise: at least one practice area is required"))
	}
	for i, area := range s.Expertise.Areas {
		if area.Title == "" {
			errs = append(errs, fmt.Errorf("expertise area %d: title is required", i))
		}
	}

	homes := 0
	for _, z := range s.GlobalDesk.Zones {
		if z.TimeZone == "" {
			errs = append(errs, fmt.Errorf("zone %q: timezone is required", z.City))
		}
		if z.Home {
			homes++
		}
	}
	if homes > 1 {
		errs = append(errs, fmt.Errorf("global desk: %d zones marked home, want at most one", homes))
	}

	return errors.Join(errs...)
}
