package scrollspy

// Offset is added to the scroll position before matching, so a section
// becomes active a little before its top reaches the viewport edge.
const Offset = 200

// Sections is the fixed, ordered list of page section ids
var Sections = []string{"hero", "profile", "expertise", "judgments", "global", "contact"}

// Box is the measured vertical extent of one section
type Box struct {
	ID           string  `json:"id" form:"id"`
	OffsetTop    float64 `json:"offset_top" form:"offset_top"`
	OffsetHeight float64 `json:"offset_height" form:"offset_height"`
}

// Contains reports whether pos falls in [OffsetTop, OffsetTop+OffsetHeight)
func (b Box) Contains(pos float64) bool {
	return pos >= b.OffsetTop && pos < b.OffsetTop+b.OffsetHeight
}

// Layout is a set of measured sections keyed by id
type Layout map[string]Box

// NewLayout indexes boxes by id. Later boxes replace earlier ones with the same id.
func NewLayout(boxes []Box) Layout {
	layout := make(Layout, len(boxes))
	for _, b := range boxes {
		layout[b.ID] = b
	}
	return layout
}

// IsSection reports whether id is one of Sections
func IsSection(id string) bool {
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Active returns the last section, in Sections order, whose range contains
// scrollY + Offset. Sections missing from the layout are skipped.
func Active(layout Layout, scrollY float64) (string, bool) {
	pos := scrollY + Offset

	active, matched := "", false
	for _, id := range Sections {
		box, ok := layout[id]
		if !ok {
			continue
		}
		if box.Contains(pos) {
			active, matched = id, true
		}
	}
	return active, matched
}

// Resolve returns the section to highlight after a scroll to scrollY.
// Without a match the current section stays active.
func Resolve(current string, layout Layout, scrollY float64) string {
	if id, ok := Active(layout, scrollY); ok {
		return id
	}
	return current
}
