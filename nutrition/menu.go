package nutrition

import (
	"strings"
	"time"
)

// MenuItem is one entry of the rotating weekly menu. Day is an English
// weekday name; Meal is the raw slot name as stored, which may use an older
// spelling such as "snacks".
type MenuItem struct {
	ID       string `json:"id"`
	Day      string `json:"day"`
	Meal     string `json:"meal"`
	Item     string `json:"item"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Lactose  bool   `json:"lactose"`
	Gluten   bool   `json:"gluten"`
}

// Slot resolves Meal to a MealSlot. ok is false for unrecognised names.
func (m MenuItem) Slot() (MealSlot, bool) {
	return ParseMealSlot(m.Meal)
}

// NutritionTotals is the sum over a set of menu items.
type NutritionTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Add returns t plus item's nutrition.
func (t NutritionTotals) Add(item MenuItem) NutritionTotals {
	t.Calories += item.Calories
	t.Protein += item.Protein
	t.Carbs += item.Carbs
	t.Fat += item.Fat
	return t
}

// Totals sums calories and macros over items.
func Totals(items []MenuItem) NutritionTotals {
	var t NutritionTotals
	for _, item := range items {
		t = t.Add(item)
	}
	return t
}

// ItemsForDay keeps the items whose Day names weekday, ignoring case and
// surrounding space. Input order is preserved.
func ItemsForDay(items []MenuItem, weekday time.Weekday) []MenuItem {
	target := strings.ToLower(weekday.String())
	out := []MenuItem{}
	for _, item := range items {
		if strings.ToLower(strings.TrimSpace(item.Day)) == target {
			out = append(out, item)
		}
	}
	return out
}

// GroupBySlot buckets items by meal slot. Every slot is present in the
// result, empty or not; items with an unknown meal name are dropped.
func GroupBySlot(items []MenuItem) map[MealSlot][]MenuItem {
	grouped := make(map[MealSlot][]MenuItem, len(mealWindows))
	for _, slot := range MealSlots() {
		grouped[slot] = []MenuItem{}
	}
	for _, item := range items {
		if slot, ok := item.Slot(); ok {
			grouped[slot] = append(grouped[slot], item)
		}
	}
	return grouped
}

// DefaultMenu is the starter menu new users get a copy of. IDs are left
// empty for the store to assign.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Day: "Monday", Meal: "breakfast", Item: "Oatmeal with Berries", Calories: 300, Protein: 10, Carbs: 45, Fat: 8, Gluten: true},
		{Day: "Monday", Meal: "lunch", Item: "Grilled Chicken Salad", Calories: 450, Protein: 35, Carbs: 20, Fat: 25},
		{Day: "Monday", Meal: "snack", Item: "Greek Yogurt with Almonds", Calories: 200, Protein: 15, Carbs: 10, Fat: 12, Lactose: true},
		{Day: "Monday", Meal: "dinner", Item: "Salmon with Quinoa", Calories: 550, Protein: 40, Carbs: 45, Fat: 20},
		{Day: "Tuesday", Meal: "breakfast", Item: "Avocado Toast", Calories: 350, Protein: 12, Carbs: 40, Fat: 18, Gluten: true},
		{Day: "Tuesday", Meal: "lunch", Item: "Turkey Wrap", Calories: 400, Protein: 25, Carbs: 35, Fat: 15, Gluten: true},
		{Day: "Tuesday", Meal: "snack", Item: "Protein Bar", Calories: 250, Protein: 20, Carbs: 25, Fat: 8, Lactose: true},
		{Day: "Tuesday", Meal: "dinner", Item: "Beef Stir Fry", Calories: 500, Protein: 30, Carbs: 40, Fat: 22},
		{Day: "Saturday", Meal: "breakfast", Item: "Oatmeal with Berries", Calories: 300, Protein: 10, Carbs: 45, Fat: 8, Gluten: true},
		{Day: "Saturday", Meal: "lunch", Item: "Grilled Chicken Salad", Calories: 450, Protein: 35, Carbs: 25, Fat: 20},
		{Day: "Saturday", Meal: "snack", Item: "Greek Yogurt with Nuts", Calories: 200, Protein: 15, Carbs: 10, Fat: 12, Lactose: true},
		{Day: "Saturday", Meal: "dinner", Item: "Salmon with Quinoa", Calories: 550, Protein: 40, Carbs: 35, Fat: 25},
	}
}
