package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

/* ─── BMR ─────────────────────────────────────────────────────────────── */

// TestComputeBMR_KnownValues checks both Mifflin-St Jeor constants against
// hand-computed results: 10*70 + 6.25*175 - 5*30 = 1643.75 before the constant.
func TestComputeBMR_KnownValues(t *testing.T) {
	male := BiometricInput{Age: 30, Gender: GenderMale, HeightCM: 175, WeightKG: 70}
	female := BiometricInput{Age: 30, Gender: GenderFemale, HeightCM: 175, WeightKG: 70}

	assert.InDelta(t, 1648.75, ComputeBMR(male), 1e-9)
	assert.InDelta(t, 1482.75, ComputeBMR(female), 1e-9)
}

// TestComputeBMR_MaleFemaleGap verifies that male exceeds female by exactly
// 166 with all other inputs held constant.
func TestComputeBMR_MaleFemaleGap(t *testing.T) {
	cases := []BiometricInput{
		{Age: 1, HeightCM: 1, WeightKG: 1},
		{Age: 25, HeightCM: 160.5, WeightKG: 55.2},
		{Age: 64, HeightCM: 190, WeightKG: 110},
		{Age: 120, HeightCM: 300, WeightKG: 500},
	}
	for _, in := range cases {
		m, f := in, in
		m.Gender = GenderMale
		f.Gender = GenderFemale
		assert.InDelta(t, 166, ComputeBMR(m)-ComputeBMR(f), 1e-9, "input %+v", in)
	}
}

// TestComputeBMR_NonMaleUsesFemaleConstant covers values outside the enum.
func TestComputeBMR_NonMaleUsesFemaleConstant(t *testing.T) {
	base := BiometricInput{Age: 40, HeightCM: 170, WeightKG: 80, Gender: GenderFemale}
	other := base
	other.Gender = "other"
	empty := base
	empty.Gender = ""

	assert.Equal(t, ComputeBMR(base), ComputeBMR(other))
	assert.Equal(t, ComputeBMR(base), ComputeBMR(empty))
}

// TestComputeBMR_NaNPassesThrough confirms no validation happens inside.
func TestComputeBMR_NaNPassesThrough(t *testing.T) {
	in := BiometricInput{Age: 30, Gender: GenderMale, HeightCM: math.NaN(), WeightKG: 70}
	assert.True(t, math.IsNaN(ComputeBMR(in)))
}

/* ─── TDEE ────────────────────────────────────────────────────────────── */

func TestComputeTDEE_Multipliers(t *testing.T) {
	cases := map[ActivityLevel]float64{
		Sedentary:        1.2,
		LightlyActive:    1.375,
		ModeratelyActive: 1.55,
		VeryActive:       1.725,
		ExtraActive:      1.9,
	}
	for level, mult := range cases {
		assert.InDelta(t, 1500*mult, ComputeTDEE(1500, level), 1e-9, "level %s", level)
	}
}

// TestComputeTDEE_UnknownFallsBackToSedentary verifies that unknown and empty
// levels silently use the 1.2 multiplier.
func TestComputeTDEE_UnknownFallsBackToSedentary(t *testing.T) {
	for _, level := range []ActivityLevel{"unknown_value", "", "SEDENTARY", "active"} {
		assert.InDelta(t, 1500*1.2, ComputeTDEE(1500, level), 1e-9, "level %q", level)
		assert.False(t, level.Valid(), "level %q", level)
	}
}

func TestParseActivityLevel(t *testing.T) {
	cases := []struct {
		in   string
		want ActivityLevel
		ok   bool
	}{
		{"sedentary", Sedentary, true},
		{"  Moderately_Active ", ModeratelyActive, true},
		{"light", LightlyActive, true},
		{"moderate", ModeratelyActive, true},
		{"very", VeryActive, true},
		{"extra", ExtraActive, true},
		{"couch", Sedentary, false},
		{"", Sedentary, false},
	}
	for _, tc := range cases {
		got, ok := ParseActivityLevel(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

// TestCalculators_Deterministic calls each calculator twice with the same input.
func TestCalculators_Deterministic(t *testing.T) {
	in := BiometricInput{Age: 33, Gender: GenderFemale, HeightCM: 168, WeightKG: 61}
	assert.Equal(t, ComputeBMR(in), ComputeBMR(in))
	assert.Equal(t, ComputeTDEE(1400, VeryActive), ComputeTDEE(1400, VeryActive))
	assert.Equal(t, AllocateMacros(2100, GoalBulk, 61), AllocateMacros(2100, GoalBulk, 61))
}

func TestParseGender(t *testing.T) {
	cases := map[string]struct {
		want Gender
		ok   bool
	}{
		"male":     {GenderMale, true},
		"Male":     {GenderMale, true},
		" FEMALE ": {GenderFemale, true},
		"other":    {"other", false},
		"":         {"", false},
	}
	for in, tc := range cases {
		got, ok := ParseGender(in)
		assert.Equal(t, tc.ok, ok, "input %q", in)
		assert.Equal(t, tc.want, got, "input %q", in)
	}
}
