package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected State
	}{
		{
			name:     "defaults",
			query:    "",
			expected: State{ActiveSection: "hero"},
		},
		{
			name:     "section and tab",
			query:    "section=expertise&tab=2",
			expected: State{ActiveSection: "expertise", ActiveTab: 2},
		},
		{
			name:     "unknown section",
			query:    "section=blog",
			expected: State{ActiveSection: "hero"},
		},
		{
			name:     "tab out of range",
			query:    "tab=9",
			expected: State{ActiveSection: "hero"},
		},
		{
			name:     "negative tab",
			query:    "tab=-1",
			expected: State{ActiveSection: "hero"},
		},
		{
			name:     "menu open",
			query:    "menu=open&section=global",
			expected: State{ActiveSection: "global", MobileMenuOpen: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, FromQuery(q, 4))
		})
	}
}

func TestNavigateClosesMenu(t *testing.T) {
	s := State{ActiveSection: "hero", MobileMenuOpen: true}

	s.Navigate("judgments")
	assert.Equal(t, "judgments", s.ActiveSection)
	assert.False(t, s.MobileMenuOpen)

	s.Navigate("nowhere")
	assert.Equal(t, "judgments", s.ActiveSection)
}

func TestQueryRoundTrip(t *testing.T) {
	s := State{ActiveSection: "contact", MobileMenuOpen: true, ActiveTab: 3}
	assert.Equal(t, s, FromQuery(s.Query(), 4))
	assert.Empty(t, State{ActiveSection: "hero"}.Query().Encode())
}
