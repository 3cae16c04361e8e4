// Package schedule computes the international desk clocks and the upcoming
// consultation windows.
package schedule

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/teambition/rrule-go"

	"advocate_site/internal/content"
)

const clockLayout = "03:04 PM"

// ZoneTime is one rendered clock row
type ZoneTime struct {
	City   string
	Time   string
	Active bool
}

// Slot is one consultation window, in home time
type Slot struct {
	Start time.Time
	Label string
}

type zone struct {
	city string
	loc  *time.Location
	home bool
}

// Desk holds resolved time zones and the consultation recurrence
type Desk struct {
	home  *time.Location
	zones []zone
	rule  string
}

// NewDesk resolves the zones and validates the recurrence rule
func NewDesk(homeTZ string, zones []content.Zone, rule string) (*Desk, error) {
	home, err := time.LoadLocation(homeTZ)
	if err != nil {
		return nil, fmt.Errorf("home timezone %q: %w", homeTZ, err)
	}

	d := &Desk{home: home, rule: rule}
	for _, z := range zones {
		loc, err := time.LoadLocation(z.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", z.City, err)
		}
		d.zones = append(d.zones, zone{city: z.City, loc: loc, home: z.Home})
	}

	if rule != "" {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return nil, fmt.Errorf("consultation rule: %w", err)
		}
	}
	return d, nil
}

// Clocks returns the wall-clock time at now for every zone
func (d *Desk) Clocks(now time.Time) []ZoneTime {
	out := make([]ZoneTime, 0, len(d.zones))
	for _, z := range d.zones {
		out = append(out, ZoneTime{
			City:   z.city,
			Time:   now.In(z.loc).Format(clockLayout),
			Active: z.home,
		})
	}
	return out
}

// NextSlots returns up to n consultation windows strictly after now.
// An empty rule yields no slots.
func (d *Desk) NextSlots(now time.Time, n int) []Slot {
	if d.rule == "" || n <= 0 {
		return nil
	}

	rule, err := rrule.StrToRRule(d.rule)
	if err != nil {
		return nil
	}
	// anchored at local midnight so rules without BYMINUTE/BYSECOND land on the hour
	y, m, day := now.In(d.home).Date()
	rule.DTStart(time.Date(y, m, day, 0, 0, 0, 0, d.home))

	var slots []Slot
	cur := now
	for len(slots) < n {
		next := rule.After(cur, false)
		if next.IsZero() {
			break
		}
		next = next.In(d.home)
		slots = append(slots, Slot{Start: next, Label: next.Format("Mon 02 Jan, 03:04 PM")})
		cur = next
	}
	return slots
}
