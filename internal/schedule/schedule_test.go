package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocate_site/internal/content"
)

const weekdayRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR;BYHOUR=10,15;BYMINUTE=0;BYSECOND=0"

func deskZones() []content.Zone {
	return []content.Zone{
		{City: "New Delhi", TimeZone: "Asia/Kolkata", Home: true},
		{City: "Dubai", TimeZone: "Asia/Dubai"},
		{City: "London", TimeZone: "Europe/London"},
		{City: "New York", TimeZone: "America/New_York"},
	}
}

func TestClocks(t *testing.T) {
	desk, err := NewDesk("Asia/Kolkata", deskZones(), weekdayRule)
	require.NoError(t, err)

	now := time.Date(2026, 1, 5, 4, 30, 0, 0, time.UTC)
	want := []ZoneTime{
		{City: "New Delhi", Time: "10:00 AM", Active: true},
		{City: "Dubai", Time: "08:30 AM"},
		{City: "London", Time: "04:30 AM"},
		{City: "New York", Time: "11:30 PM"},
	}
	if diff := cmp.Diff(want, desk.Clocks(now)); diff != "" {
		t.Errorf("Clocks mismatch (-want +got):\n%s", diff)
	}
}

func TestNextSlots(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	desk, err := NewDesk("Asia/Kolkata", deskZones(), weekdayRule)
	require.NoError(t, err)

	tests := []struct {
		name     string
		now      time.Time
		expected []time.Time
	}{
		{
			name: "monday morning",
			now:  time.Date(2026, 1, 5, 9, 0, 0, 0, ist),
			expected: []time.Time{
				time.Date(2026, 1, 5, 10, 0, 0, 0, ist),
				time.Date(2026, 1, 5, 15, 0, 0, 0, ist),
				time.Date(2026, 1, 6, 10, 0, 0, 0, ist),
			},
		},
		{
			name: "friday evening rolls over the weekend",
			now:  time.Date(2026, 1, 9, 16, 0, 0, 0, ist),
			expected: []time.Time{
				time.Date(2026, 1, 12, 10, 0, 0, 0, ist),
				time.Date(2026, 1, 12, 15, 0, 0, 0, ist),
				time.Date(2026, 1, 13, 10, 0, 0, 0, ist),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := desk.NextSlots(tt.now, 3)
			require.Len(t, slots, len(tt.expected))
			for i, want := range tt.expected {
				assert.True(t, want.Equal(slots[i].Start), "slot %d: got %s want %s", i, slots[i].Start, want)
			}
		})
	}
}

func TestNextSlotsLabel(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	desk, err := NewDesk("Asia/Kolkata", nil, weekdayRule)
	require.NoError(t, err)

	slots := desk.NextSlots(time.Date(2026, 1, 5, 9, 0, 0, 0, ist), 1)
	require.Len(t, slots, 1)
	assert.Equal(t, "Mon 05 Jan, 10:00 AM", slots[0].Label)
}

func TestNoRule(t *testing.T) {
	desk, err := NewDesk("Asia/Kolkata", nil, "")
	require.NoError(t, err)
	assert.Empty(t, desk.NextSlots(time.Now(), 3))
}

func TestNewDeskErrors(t *testing.T) {
	_, err := NewDesk("Mars/Olympus", nil, "")
	assert.Error(t, err)

	_, err = NewDesk("Asia/Kolkata", []content.Zone{{City: "Nowhere", TimeZone: "Nowhere/City"}}, "")
	assert.Error(t, err)

	_, err = NewDesk("Asia/Kolkata", nil, "FREQ=SOMETIMES")
	assert.Error(t, err)
}

func TestNextSlotsWithoutMinutesInRule(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	desk, err := NewDesk("Asia/Kolkata", deskZones(), "FREQ=DAILY;BYHOUR=10,15")
	require.NoError(t, err)

	slots := desk.NextSlots(time.Date(2026, 1, 5, 9, 37, 12, 0, ist), 2)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Start.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, ist)), slots[0].Start)
	assert.True(t, slots[1].Start.Equal(time.Date(2026, 1, 5, 15, 0, 0, 0, ist)), slots[1].Start)
	assert.Equal(t, "Mon 05 Jan, 10:00 AM", slots[0].Label)
}
