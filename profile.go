package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/meal-planner-go-api/nutrition"
)

// populateMacros fills the computed macro budget from the stored TDEE and
// the profile's goal. No-op until the BMR step is complete.
func populateMacros(p *userProfile) {
	if !p.complete() || p.WeightKG == nil {
		return
	}
	m := nutrition.AllocateMacros(float64(*p.TDEE), nutrition.FitnessGoal(p.FitnessGoal), *p.WeightKG)
	p.Macros = &m
}

// computeEnergy returns rounded BMR and TDEE when every body field is set.
func computeEnergy(p *userProfile) (bmr, tdee int, ok bool) {
	in, level, ok := p.biometrics()
	if !ok {
		return 0, 0, false
	}
	bmrF := nutrition.ComputeBMR(in)
	tdeeF := nutrition.ComputeTDEE(bmrF, level)
	return int(math.Round(bmrF)), int(math.Round(tdeeF)), true
}

// getProfile returns the authenticated user's profile with computed macros.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := queryOne[userProfile](h.db, c,
		"SELECT * FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}

	populateMacros(&p)
	c.JSON(http.StatusOK, p)
}

// buildProfileUpdate validates body and turns its non-nil fields into SET
// clauses. Values are checked against the sign-up form bounds here because
// the calculators themselves accept anything.
func buildProfileUpdate(body patchProfileRequest) ([]string, pgx.NamedArgs, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{}

	if body.Age != nil {
		if *body.Age < nutrition.MinAge || *body.Age > nutrition.MaxAge {
			return nil, nil, fmt.Errorf("age must be between %d and %d", nutrition.MinAge, nutrition.MaxAge)
		}
		setClauses = append(setClauses, "age = @age")
		args["age"] = *body.Age
	}
	if body.Gender != nil {
		g, ok := nutrition.ParseGender(*body.Gender)
		if !ok {
			return nil, nil, errors.New("gender must be one of: male, female")
		}
		setClauses = append(setClauses, "gender = @gender")
		args["gender"] = string(g)
	}
	if body.HeightCM != nil {
		if !(*body.HeightCM >= nutrition.MinHeightCM && *body.HeightCM <= nutrition.MaxHeightCM) {
			return nil, nil, fmt.Errorf("height_cm must be between %d and %d", nutrition.MinHeightCM, nutrition.MaxHeightCM)
		}
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = *body.HeightCM
	}
	if body.WeightKG != nil {
		if !(*body.WeightKG >= nutrition.MinWeightKG && *body.WeightKG <= nutrition.MaxWeightKG) {
			return nil, nil, fmt.Errorf("weight_kg must be between %d and %d", nutrition.MinWeightKG, nutrition.MaxWeightKG)
		}
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = *body.WeightKG
	}
	// Unknown levels would silently compute with the sedentary multiplier,
	// so they are rejected before they reach the table.
	if body.ActivityLevel != nil {
		level, ok := nutrition.ParseActivityLevel(*body.ActivityLevel)
		if !ok {
			return nil, nil, errors.New("activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extra_active")
		}
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = string(level)
	}
	if body.FitnessGoal != nil {
		goal, ok := nutrition.ParseFitnessGoal(*body.FitnessGoal)
		if !ok {
			return nil, nil, errors.New("fitness_goal must be one of: bulk, cut, maintain")
		}
		setClauses = append(setClauses, "fitness_goal = @fitnessGoal")
		args["fitnessGoal"] = string(goal)
	}

	if len(setClauses) == 0 {
		return nil, nil, errors.New("no fields to update")
	}
	return setClauses, args, nil
}

// patchProfile updates the provided profile fields, then recomputes and
// stores BMR and TDEE once every body field is known.
// PATCH /api/profile.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	setClauses, args, err := buildProfileUpdate(body)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	args["userID"] = userID

	query := "UPDATE user_profiles SET " +
		strings.Join(setClauses, ", ") +
		", updated_at = now() WHERE user_id = @userID RETURNING *"

	// The field update and the recomputed energy commit together so the row
	// never holds new body fields next to a stale BMR/TDEE.
	tx, err := h.db.Begin(c)
	if err != nil {
		log.Printf("[patchProfile] begin failed for user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	defer tx.Rollback(c)

	p, err := queryOne[userProfile](tx, c, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	bmr, tdee, recomputed := computeEnergy(&p)
	if recomputed {
		p, err = queryOne[userProfile](tx, c,
			"UPDATE user_profiles SET bmr = @bmr, tdee = @tdee WHERE user_id = @userID RETURNING *",
			pgx.NamedArgs{"bmr": bmr, "tdee": tdee, "userID": userID})
		if err != nil {
			log.Printf("[patchProfile] energy update failed for user %d: %v", userID, err)
			apiError(c, http.StatusInternalServerError, "failed to update profile")
			return
		}
	}

	if err := tx.Commit(c); err != nil {
		log.Printf("[patchProfile] commit failed for user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if recomputed {
		calculationsTotal.WithLabelValues("profile").Inc()
	}

	populateMacros(&p)
	c.JSON(http.StatusOK, p)
}
