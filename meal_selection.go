package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lg/meal-planner-go-api/nutrition"
)

const selectionColumns = `s.id, s.meal_plan_id, s.date,
	mp.day, mp.meal, mp.item, mp.calories, mp.protein, mp.carbs, mp.fat, mp.lactose, mp.gluten`

// summarizeSelections totals the day's selections and, when the profile has
// a TDEE, compares them against the goal's calorie budget.
func summarizeSelections(date string, rows []mealSelectionRow, p *userProfile) dailySelections {
	out := dailySelections{
		Date:       date,
		Goal:       nutrition.GoalMaintain,
		Selections: make([]mealSelection, 0, len(rows)),
	}
	items := make([]nutrition.MenuItem, 0, len(rows))
	for _, r := range rows {
		s := r.selection()
		out.Selections = append(out.Selections, s)
		items = append(items, s.Item)
	}
	out.Totals = nutrition.Totals(items)

	if p == nil {
		return out
	}
	if g := nutrition.FitnessGoal(p.FitnessGoal); g.Valid() {
		out.Goal = g
	}
	populateMacros(p)
	if p.Macros != nil {
		budget := *p.Macros
		left := budget.Calories - out.Totals.Calories
		out.Budget = &budget
		out.CaloriesLeft = &left
	}
	return out
}

// getMealSelections returns the meals logged for a date with nutrition totals.
// GET /api/meal-selections?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getMealSelections(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", h.localNow().Format("2006-01-02"))

	// An invalid value would silently return no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	rows, err := queryMany[mealSelectionRow](h.db, c,
		`SELECT `+selectionColumns+`
		 FROM meal_selections s
		 JOIN meal_plans mp ON mp.id = s.meal_plan_id
		 WHERE s.user_id = @userID AND s.date = @date
		 ORDER BY s.created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch selections")
		return
	}

	var profile *userProfile
	p, err := queryOne[userProfile](h.db, c,
		"SELECT * FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	switch {
	case err == nil:
		profile = &p
	case !errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, summarizeSelections(date, rows, profile))
}

// createMealSelection logs one of the user's menu items for a date.
// POST /api/meal-selections. Body: { "meal_plan_id": uuid, "date"?: "YYYY-MM-DD" }.
func (h *Handler) createMealSelection(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createSelectionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	planID, err := uuid.Parse(body.MealPlanID)
	if err != nil {
		apiError(c, http.StatusBadRequest, "meal_plan_id must be a UUID")
		return
	}
	if body.Date == "" {
		body.Date = h.localNow().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	// The INSERT ... SELECT only matches plans owned by the caller, so another
	// user's plan ID yields no row and a 404.
	row, err := queryOne[mealSelectionRow](h.db, c,
		`WITH s AS (
			INSERT INTO meal_selections (id, user_id, meal_plan_id, date)
			SELECT @id::uuid, @userID, mp.id, @date::date
			FROM meal_plans mp
			WHERE mp.id = @mealPlanID AND mp.user_id = @userID
			RETURNING *
		 )
		 SELECT `+selectionColumns+`
		 FROM s JOIN meal_plans mp ON mp.id = s.meal_plan_id`,
		pgx.NamedArgs{"id": uuid.NewString(), "userID": userID, "mealPlanID": planID.String(), "date": body.Date})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "meal plan not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to create selection")
		}
		return
	}

	c.JSON(http.StatusCreated, row.selection())
}

// deleteMealSelection removes a logged meal. Returns 204 on success.
// DELETE /api/meal-selections/:id.
func (h *Handler) deleteMealSelection(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "id must be a UUID")
		return
	}

	result, err := h.db.Exec(c,
		"DELETE FROM meal_selections WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id.String(), "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete selection")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "selection not found")
		return
	}

	c.Status(http.StatusNoContent)
}
