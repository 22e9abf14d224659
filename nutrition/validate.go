package nutrition

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every ValidateBiometrics failure.
var ErrInvalidInput = errors.New("invalid input")

// Bounds enforced by the sign-up form. The calculators do not check them.
const (
	MinAge, MaxAge           = 1, 120
	MinHeightCM, MaxHeightCM = 1, 300
	MinWeightKG, MaxWeightKG = 1, 500
)

// ValidateBiometrics checks in against the form bounds and the known genders.
// Callers at the HTTP boundary use it before ComputeBMR.
func ValidateBiometrics(in BiometricInput) error {
	if in.Age < MinAge || in.Age > MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, MinAge, MaxAge)
	}
	if !inRange(in.HeightCM, MinHeightCM, MaxHeightCM) {
		return fmt.Errorf("%w: height_cm must be between %d and %d", ErrInvalidInput, MinHeightCM, MaxHeightCM)
	}
	if !inRange(in.WeightKG, MinWeightKG, MaxWeightKG) {
		return fmt.Errorf("%w: weight_kg must be between %d and %d", ErrInvalidInput, MinWeightKG, MaxWeightKG)
	}
	if in.Gender != GenderMale && in.Gender != GenderFemale {
		return fmt.Errorf("%w: gender must be male or female", ErrInvalidInput)
	}
	return nil
}

// inRange is false for NaN, which fails both comparisons.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
