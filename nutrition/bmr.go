// Package nutrition holds the pure calculations behind the meal planner:
// BMR/TDEE, goal-based macro budgets, meal-time classification, and small
// helpers over the weekly menu. Nothing here performs I/O or keeps state.
package nutrition

import "strings"

// Gender selects the Mifflin-St Jeor constant. Anything other than GenderMale
// uses the female constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender normalises case and surrounding space. ok is false for
// anything other than male or female.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	return g, g == GenderMale || g == GenderFemale
}

// BiometricInput is the body data needed for BMR. Values are not validated
// here; see ValidateBiometrics for the bounds the sign-up form enforces.
type BiometricInput struct {
	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
}

// ActivityLevel is the TDEE activity tier.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtraActive      ActivityLevel = "extra_active"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// activityAliases are the short names older clients send.
var activityAliases = map[string]ActivityLevel{
	"light":    LightlyActive,
	"moderate": ModeratelyActive,
	"very":     VeryActive,
	"extra":    ExtraActive,
}

// Multiplier returns the TDEE multiplier for l. Unknown or empty levels get
// the sedentary multiplier instead of an error.
func (l ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[l]; ok {
		return m
	}
	return activityMultipliers[Sedentary]
}

// Valid reports whether l is one of the five known levels.
func (l ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[l]
	return ok
}

// ParseActivityLevel normalises s (case, surrounding space) and resolves the
// short aliases. ok is false when s names no known level.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if l := ActivityLevel(key); l.Valid() {
		return l, true
	}
	if l, ok := activityAliases[key]; ok {
		return l, true
	}
	return Sedentary, false
}

// ComputeBMR applies Mifflin-St Jeor. The result is not rounded.
func ComputeBMR(in BiometricInput) float64 {
	bmr := 10*in.WeightKG + 6.25*in.HeightCM - 5*float64(in.Age)
	if in.Gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTDEE scales bmr by the activity multiplier.
func ComputeTDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * level.Multiplier()
}
