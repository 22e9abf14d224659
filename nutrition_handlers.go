package main

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/meal-planner-go-api/nutrition"
)

// calculate runs the BMR calculator form without saving anything.
// POST /api/nutrition/calculate. Body: biometrics, activity_level and an
// optional fitness_goal (default maintain).
func (h *Handler) calculate(c *gin.Context) {
	var body calculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if g, ok := nutrition.ParseGender(string(body.Gender)); ok {
		body.Gender = g
	}
	if err := nutrition.ValidateBiometrics(body.BiometricInput); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	level, ok := nutrition.ParseActivityLevel(body.ActivityLevel)
	if !ok {
		apiError(c, http.StatusBadRequest, "activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extra_active")
		return
	}
	goal := nutrition.GoalMaintain
	if body.FitnessGoal != "" {
		if goal, ok = nutrition.ParseFitnessGoal(body.FitnessGoal); !ok {
			apiError(c, http.StatusBadRequest, "fitness_goal must be one of: bulk, cut, maintain")
			return
		}
	}

	bmr := nutrition.ComputeBMR(body.BiometricInput)
	tdee := nutrition.ComputeTDEE(bmr, level)
	calculationsTotal.WithLabelValues("calculate").Inc()

	c.JSON(http.StatusOK, calculateResponse{
		BMR:    int(math.Round(bmr)),
		TDEE:   int(math.Round(tdee)),
		Goal:   goal,
		Macros: nutrition.AllocateMacros(tdee, goal, body.WeightKG),
	})
}

// getMealTime reports the current or next meal window.
// GET /api/meal-time.
func (h *Handler) getMealTime(c *gin.Context) {
	now := h.localNow()
	c.JSON(http.StatusOK, gin.H{
		"time":    now.Format("15:04"),
		"meal":    nutrition.ClassifyMeal(now),
		"windows": nutrition.MealWindows(),
	})
}

// getRecommendations returns goal-based macros and advice from the stored
// profile. GET /api/nutrition/recommendations?goal=bulk|cut|maintain; the
// goal defaults to the one saved on the profile.
func (h *Handler) getRecommendations(c *gin.Context) {
	userID := c.GetInt("user_id")

	var override *nutrition.FitnessGoal
	if s := c.Query("goal"); s != "" {
		g, ok := nutrition.ParseFitnessGoal(s)
		if !ok {
			apiError(c, http.StatusBadRequest, "goal must be one of: bulk, cut, maintain")
			return
		}
		override = &g
	}

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
	if !p.complete() || p.WeightKG == nil {
		apiError(c, http.StatusConflict, "complete the BMR calculator first")
		return
	}

	goal := nutrition.FitnessGoal(p.FitnessGoal)
	if override != nil {
		goal = *override
	}
	calculationsTotal.WithLabelValues("recommendation").Inc()

	c.JSON(http.StatusOK, nutrition.Recommend(float64(*p.TDEE), goal, *p.WeightKG))
}
