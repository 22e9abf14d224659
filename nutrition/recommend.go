package nutrition

import "fmt"

// Recommendation is what the dashboard shows for a goal: the macro budget,
// the budget spelled out as portion lines, and goal-specific advice.
type Recommendation struct {
	Goal          FitnessGoal           `json:"goal"`
	Description   string                `json:"description"`
	Macros        MacroBudget           `json:"macros"`
	Portions      []string              `json:"portions"`
	Modifications []string              `json:"modifications"`
	Tips          []string              `json:"tips"`
	MealSpecific  map[MealSlot][]string `json:"meal_specific"`
}

var goalModifications = map[FitnessGoal][]string{
	GoalBulk: {
		"Consider larger portions of available meals",
		"Add extra protein sources when available",
		"Include healthy fats like nuts or avocado",
		"Choose calorie-dense options from the menu",
	},
	GoalCut: {
		"Choose smaller portions of available meals",
		"Focus on lean protein options",
		"Minimize added fats and oils",
		"Add extra vegetables when possible",
	},
	GoalMaintain: {
		"Maintain balanced portions",
		"Mix protein sources throughout the day",
		"Include a variety of vegetables",
		"Balance meals between protein, carbs, and fats",
	},
}

var goalTips = map[FitnessGoal][]string{
	GoalBulk: {
		"Eat every 2-3 hours",
		"Choose higher calorie options when available",
		"Combine protein sources in meals",
		"Focus on post-workout nutrition",
	},
	GoalCut: {
		"Stay hydrated throughout the day",
		"Choose protein-rich, lower calorie options",
		"Time carbs around workouts",
		"Focus on fiber-rich foods",
	},
	GoalMaintain: {
		"Maintain consistent meal timing",
		"Balance your plate with all macronutrients",
		"Listen to hunger cues",
		"Stay consistent with portions",
	},
}

var mealIdeas = map[MealSlot][]string{
	Breakfast: {
		"Oatmeal with berries and nuts",
		"Greek yogurt with honey and granola",
		"Scrambled eggs with whole wheat toast",
		"Smoothie with protein powder and fruits",
		"Avocado toast with poached eggs",
	},
	Lunch: {
		"Grilled chicken salad with olive oil",
		"Quinoa bowl with roasted vegetables",
		"Brown rice with stir-fried vegetables",
		"Whole wheat wrap with lean protein",
		"Lentil soup with whole grain bread",
	},
	Snack: {
		"Mixed nuts and dried fruits",
		"Protein shake with banana",
		"Greek yogurt with berries",
		"Hard-boiled eggs",
		"Hummus with vegetable sticks",
	},
	Dinner: {
		"Grilled salmon with sweet potato",
		"Lean beef with roasted vegetables",
		"Tofu stir-fry with brown rice",
		"Baked chicken with quinoa",
		"Vegetable curry with whole grain naan",
	},
}

// Recommend builds the dashboard recommendation for goal. Unknown goals are
// treated as maintain throughout.
func Recommend(tdee float64, goal FitnessGoal, weightKG float64) Recommendation {
	if !goal.Valid() {
		goal = GoalMaintain
	}
	m := AllocateMacros(tdee, goal, weightKG)

	meals := make(map[MealSlot][]string, len(mealIdeas))
	for slot, ideas := range mealIdeas {
		meals[slot] = append([]string(nil), ideas...)
	}

	return Recommendation{
		Goal:        goal,
		Description: GoalDescription(goal),
		Macros:      m,
		Portions: []string{
			fmt.Sprintf("Total daily calories: %d kcal", m.Calories),
			fmt.Sprintf("Protein: %dg (%d kcal)", m.ProteinG, m.ProteinG*kcalPerGOther),
			fmt.Sprintf("Carbs: %dg (%d kcal)", m.CarbsG, m.CarbsG*kcalPerGOther),
			fmt.Sprintf("Fat: %dg (%d kcal)", m.FatG, m.FatG*kcalPerGFat),
		},
		Modifications: append([]string(nil), goalModifications[goal]...),
		Tips:          append([]string(nil), goalTips[goal]...),
		MealSpecific:  meals,
	}
}
