package disclaimer

const (
	// FlagKey is the cookie name that records an acknowledgement on the client
	FlagKey = "hasSeenDisclaimer"
	// FlagValue is the only value that counts as acknowledged
	FlagValue = "true"
)

// State is the visibility of the disclaimer modal
type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Initial returns Shown on a first visit and Hidden otherwise
func Initial(seen bool) State {
	if seen {
		return Hidden
	}
	return Shown
}

// Acknowledge applies the single Shown -> Hidden transition.
// It reports whether the state changed.
func (s *State) Acknowledge() bool {
	if *s != Shown {
		return false
	}
	*s = Hidden
	return true
}

// FlagSet reports whether a stored flag value means the visitor has acknowledged
func FlagSet(value string) bool {
	return value == FlagValue
}
