package nutrition

import (
	"strings"
	"time"
)

// MealSlot is one of the four daily meal windows.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Snack     MealSlot = "snack"
	Dinner    MealSlot = "dinner"
)

// MealWindow is a daily [Start, End] range as zero-padded 24-hour "HH:MM"
// strings, which compare correctly as plain strings.
type MealWindow struct {
	Slot  MealSlot `json:"slot"`
	Label string   `json:"label"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}

// mealWindows is sorted by Start and the windows do not overlap.
var mealWindows = []MealWindow{
	{Slot: Breakfast, Label: "Breakfast", Start: "07:00", End: "09:30"},
	{Slot: Lunch, Label: "Lunch", Start: "11:45", End: "14:15"},
	{Slot: Snack, Label: "Evening Snacks", Start: "16:30", End: "18:00"},
	{Slot: Dinner, Label: "Dinner", Start: "19:00", End: "21:30"},
}

// MealWindows returns a copy of the daily schedule in start order.
func MealWindows() []MealWindow {
	out := make([]MealWindow, len(mealWindows))
	copy(out, mealWindows)
	return out
}

// MealSlots lists the slots in schedule order.
func MealSlots() []MealSlot {
	out := make([]MealSlot, len(mealWindows))
	for i, w := range mealWindows {
		out[i] = w.Slot
	}
	return out
}

// Window returns the schedule entry for s. ok is false for unknown slots.
func (s MealSlot) Window() (MealWindow, bool) {
	for _, w := range mealWindows {
		if w.Slot == s {
			return w, true
		}
	}
	return MealWindow{}, false
}

// Label is the display name, or the raw value for unknown slots.
func (s MealSlot) Label() string {
	if w, ok := s.Window(); ok {
		return w.Label
	}
	return string(s)
}

// Index is the slot's position in the schedule, -1 if unknown.
func (s MealSlot) Index() int {
	for i, w := range mealWindows {
		if w.Slot == s {
			return i
		}
	}
	return -1
}

// ParseMealSlot accepts the slot names plus the "snacks" and
// "evening_snacks" spellings used by older menu rows.
func ParseMealSlot(s string) (MealSlot, bool) {
	switch key := strings.ToLower(strings.TrimSpace(s)); key {
	case "snacks", "evening_snacks":
		return Snack, true
	default:
		slot := MealSlot(key)
		return slot, slot.Index() >= 0
	}
}

const (
	StatusCurrent  = "current"
	StatusUpcoming = "upcoming"
)

// MealStatus says which meal is on now, or which one comes next.
type MealStatus struct {
	Slot       MealSlot `json:"slot"`
	Label      string   `json:"label"`
	Status     string   `json:"status"`
	IsTomorrow bool     `json:"is_tomorrow"`
}

func newMealStatus(w MealWindow, status string, tomorrow bool) MealStatus {
	return MealStatus{Slot: w.Slot, Label: w.Label, Status: status, IsTomorrow: tomorrow}
}

// ClassifyMeal reports the meal window containing now (both ends inclusive),
// otherwise the next window to start today, otherwise tomorrow's breakfast.
// now is read in its own location; callers convert to the user's zone first.
func ClassifyMeal(now time.Time) MealStatus {
	hhmm := now.Format("15:04")

	for _, w := range mealWindows {
		if w.Start <= hhmm && hhmm <= w.End {
			return newMealStatus(w, StatusCurrent, false)
		}
	}

	next := -1
	for i, w := range mealWindows {
		if w.Start > hhmm && (next < 0 || w.Start < mealWindows[next].Start) {
			next = i
		}
	}
	if next >= 0 {
		return newMealStatus(mealWindows[next], StatusUpcoming, false)
	}

	return newMealStatus(mealWindows[0], StatusUpcoming, true)
}
