package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	var sections []string
	for _, item := range site.Nav {
		sections = append(sections, item.Section)
	}
	want := []string{"profile", "expertise", "judgments", "global", "contact"}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("nav sections mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, site.Expertise.Areas, 4)
	assert.Len(t, site.Judgments.Cases, 4)
	assert.Equal(t, "contact", site.CTA.Section)

	area, ok := site.Area(1)
	require.True(t, ok)
	assert.Equal(t, "Criminal Defense", area.Title)
	assert.Equal(t, []string{"Bail & Anticipatory Bail", "Criminal Appeals", "PMLA & Economic Offenses"}, area.Details)

	_, ok = site.Area(4)
	assert.False(t, ok)
	_, ok = site.Area(-1)
	assert.False(t, ok)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "minimal valid",
			yaml: `
nav:
  - { label: "Profile", section: "profile" }
expertise:
  areas:
    - { title: "Criminal Defense" }
`,
		},
		{
			name: "unknown section",
			yaml: `
nav:
  - { label: "Blog", section: "blog" }
expertise:
  areas:
    - { title: "Criminal Defense" }
`,
			wantErr: `unknown section "blog"`,
		},
		{
			name: "duplicate section",
			yaml: `
nav:
  - { label: "Profile", section: "profile" }
  - { label: "About", section: "profile" }
expertise:
  areas:
    - { title: "Criminal Defense" }
`,
			wantErr: `duplicate section "profile"`,
		},
		{
			name: "no practice areas",
			yaml: `
nav:
  - { label: "Profile", section: "profile" }
`,
			wantErr: "at least one practice area",
		},
		{
			name: "two home zones",
			yaml: `
expertise:
  areas:
    - { title: "Criminal Defense" }
global_desk:
  zones:
    - { city: "New Delhi", timezone: "Asia/Kolkata", home: true }
    - { city: "Mumbai", timezone: "Asia/Kolkata", home: true }
`,
			wantErr: "2 zones marked home",
		},
		{
			name:    "unknown field",
			yaml:    "sidebar: true\n",
			wantErr: "decode content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}
