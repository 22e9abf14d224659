package nutrition

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, time.UTC)
}

func TestClassifyMeal(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		slot     MealSlot
		status   string
		tomorrow bool
	}{
		{"breakfast in progress", at(8, 0), Breakfast, StatusCurrent, false},
		{"breakfast start inclusive", at(7, 0), Breakfast, StatusCurrent, false},
		{"breakfast end inclusive", at(9, 30), Breakfast, StatusCurrent, false},
		{"gap before lunch", at(10, 0), Lunch, StatusUpcoming, false},
		{"just after breakfast", at(9, 31), Lunch, StatusUpcoming, false},
		{"lunch end inclusive", at(14, 15), Lunch, StatusCurrent, false},
		{"afternoon gap", at(15, 0), Snack, StatusUpcoming, false},
		{"snack", at(17, 45), Snack, StatusCurrent, false},
		{"gap before dinner", at(18, 30), Dinner, StatusUpcoming, false},
		{"dinner end inclusive", at(21, 30), Dinner, StatusCurrent, false},
		{"after dinner", at(21, 31), Breakfast, StatusUpcoming, true},
		{"late night", at(22, 0), Breakfast, StatusUpcoming, true},
		{"midnight", at(0, 0), Breakfast, StatusUpcoming, false},
		{"early morning", at(6, 59), Breakfast, StatusUpcoming, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyMeal(tc.now)
			assert.Equal(t, tc.slot, got.Slot)
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.tomorrow, got.IsTomorrow)
			assert.Equal(t, tc.slot.Label(), got.Label)
		})
	}
}

// TestClassifyMeal_UsesTimeLocation checks that the wall clock of now's own
// location is used, not UTC.
func TestClassifyMeal_UsesTimeLocation(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	utc := time.Date(2026, time.March, 2, 3, 0, 0, 0, time.UTC) // 08:00 in zone

	assert.Equal(t, Breakfast, ClassifyMeal(utc.In(zone)).Slot)
	assert.Equal(t, StatusCurrent, ClassifyMeal(utc.In(zone)).Status)
	assert.Equal(t, StatusUpcoming, ClassifyMeal(utc).Status)
}

func TestClassifyMeal_IgnoresSeconds(t *testing.T) {
	now := time.Date(2026, time.March, 2, 21, 30, 59, 999, time.UTC)
	got := ClassifyMeal(now)
	assert.Equal(t, Dinner, got.Slot)
	assert.Equal(t, StatusCurrent, got.Status)
}

// TestMealWindows_SortedAndDisjoint guards the schedule table.
func TestMealWindows_SortedAndDisjoint(t *testing.T) {
	windows := MealWindows()
	require.Len(t, windows, 4)
	assert.True(t, sort.SliceIsSorted(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start }))
	for i, w := range windows {
		assert.Less(t, w.Start, w.End, "window %s", w.Slot)
		if i > 0 {
			assert.Less(t, windows[i-1].End, w.Start, "window %s overlaps previous", w.Slot)
		}
	}
	assert.Equal(t, []MealSlot{Breakfast, Lunch, Snack, Dinner}, MealSlots())
}

func TestMealWindows_ReturnsCopy(t *testing.T) {
	w := MealWindows()
	w[0].Start = "00:00"
	assert.Equal(t, "07:00", MealWindows()[0].Start)
}

func TestParseMealSlot(t *testing.T) {
	cases := map[string]MealSlot{
		"breakfast":      Breakfast,
		"Lunch":          Lunch,
		"snack":          Snack,
		"snacks":         Snack,
		"evening_snacks": Snack,
		" DINNER ":       Dinner,
	}
	for in, want := range cases {
		got, ok := ParseMealSlot(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, ok := ParseMealSlot("brunch")
	assert.False(t, ok)
}

func TestMealSlot_LabelAndIndex(t *testing.T) {
	assert.Equal(t, "Evening Snacks", Snack.Label())
	assert.Equal(t, "brunch", MealSlot("brunch").Label())
	assert.Equal(t, 3, Dinner.Index())
	assert.Equal(t, -1, MealSlot("brunch").Index())
}
