package nutrition

import (
	"math"
	"strings"
)

// FitnessGoal picks the calorie adjustment and protein target.
type FitnessGoal string

const (
	GoalBulk     FitnessGoal = "bulk"
	GoalCut      FitnessGoal = "cut"
	GoalMaintain FitnessGoal = "maintain"
)

// Goals lists the goals in the order the dashboard offers them.
var Goals = []FitnessGoal{GoalBulk, GoalCut, GoalMaintain}

type goalPolicy struct {
	calorieModifier float64
	proteinPerKG    float64
	description     string
}

var goalPolicies = map[FitnessGoal]goalPolicy{
	GoalBulk:     {calorieModifier: 1.2, proteinPerKG: 2.0, description: "Build muscle mass with a caloric surplus"},
	GoalCut:      {calorieModifier: 0.8, proteinPerKG: 2.2, description: "Lose fat while preserving muscle"},
	GoalMaintain: {calorieModifier: 1.0, proteinPerKG: 1.8, description: "Maintain current weight and body composition"},
}

// policy returns the table row for g, falling back to maintain.
func (g FitnessGoal) policy() goalPolicy {
	if p, ok := goalPolicies[g]; ok {
		return p
	}
	return goalPolicies[GoalMaintain]
}

// Valid reports whether g is bulk, cut or maintain.
func (g FitnessGoal) Valid() bool {
	_, ok := goalPolicies[g]
	return ok
}

// CalorieModifier is the factor applied to TDEE for g (maintain for unknown goals).
func (g FitnessGoal) CalorieModifier() float64 { return g.policy().calorieModifier }

// ProteinPerKG is the protein target in grams per kg of body weight.
func (g FitnessGoal) ProteinPerKG() float64 { return g.policy().proteinPerKG }

// ParseFitnessGoal normalises s; ok is false for anything but the three goals.
func ParseFitnessGoal(s string) (FitnessGoal, bool) {
	g := FitnessGoal(strings.ToLower(strings.TrimSpace(s)))
	if g.Valid() {
		return g, true
	}
	return GoalMaintain, false
}

// GoalDescription is the one-line summary shown under the goal picker.
func GoalDescription(g FitnessGoal) string { return g.policy().description }

// MacroBudget is a daily calorie and macro target.
type MacroBudget struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

const (
	fatShare      = 0.25
	kcalPerGFat   = 9
	kcalPerGOther = 4
)

// AllocateMacros turns tdee into a budget for goal. Each value is rounded
// before it feeds the next step. Fat is 25% of the adjusted calories and
// carbs take whatever is left, so carbs can come out negative when the
// protein target alone exceeds the budget.
func AllocateMacros(tdee float64, goal FitnessGoal, weightKG float64) MacroBudget {
	p := goal.policy()
	calories := roundHalfUp(tdee * p.calorieModifier)
	protein := roundHalfUp(weightKG * p.proteinPerKG)
	fat := roundHalfUp(float64(calories) * fatShare / kcalPerGFat)
	carbs := roundHalfUp(float64(calories-protein*kcalPerGOther-fat*kcalPerGFat) / kcalPerGOther)
	return MacroBudget{
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	}
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
