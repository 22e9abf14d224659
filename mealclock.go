package main

import (
	"context"
	"log"
	"time"

	"lg/meal-planner-go-api/nutrition"
)

// mealClock re-classifies the current meal on a fixed interval and reports
// changes. It is the only place in the service that owns a timer; the
// nutrition package is called with an explicit time.
type mealClock struct {
	now      func() time.Time
	loc      *time.Location
	onChange func(prev, next nutrition.MealStatus)

	last    nutrition.MealStatus
	started bool
}

func newMealClock(loc *time.Location, onChange func(prev, next nutrition.MealStatus)) *mealClock {
	return &mealClock{now: time.Now, loc: loc, onChange: onChange}
}

// tick classifies the current time and calls onChange when the result
// differs from the previous tick (always on the first tick).
func (m *mealClock) tick() nutrition.MealStatus {
	status := nutrition.ClassifyMeal(m.now().In(m.loc))
	if !m.started || status != m.last {
		prev := m.last
		m.last, m.started = status, true
		if m.onChange != nil {
			m.onChange(prev, status)
		}
	}
	return status
}

// run ticks immediately and then every interval until ctx is done.
func (m *mealClock) run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	m.tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tick()
		}
	}
}

// publishMealStatus is the production onChange: it logs the transition and
// moves the meal-slot gauge.
func publishMealStatus(prev, next nutrition.MealStatus) {
	if prev.Slot != "" {
		mealSlotCurrent.WithLabelValues(string(prev.Slot), prev.Status).Set(0)
	}
	mealSlotCurrent.WithLabelValues(string(next.Slot), next.Status).Set(1)

	when := "today"
	if next.IsTomorrow {
		when = "tomorrow"
	}
	log.Printf("[mealClock] %s is %s (%s)", next.Label, next.Status, when)
}
