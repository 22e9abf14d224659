package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lg/meal-planner-go-api/nutrition"
)

const selectUserMealPlans = `SELECT * FROM meal_plans WHERE user_id = @userID ORDER BY day, meal, item`

// copyDefaultMenu gives userID their own copy of the default menu rows
// (user_id IS NULL). The advisory lock serialises concurrent first fetches
// so the copy happens once. Returns the number of rows copied.
func (h *Handler) copyDefaultMenu(ctx context.Context, userID int) (int, error) {
	tx, err := h.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(@userID)", pgx.NamedArgs{"userID": userID}); err != nil {
		return 0, fmt.Errorf("lock: %w", err)
	}

	var existing int
	if err := tx.QueryRow(ctx, "SELECT count(*) FROM meal_plans WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID}).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	rows, err := tx.Query(ctx, "SELECT * FROM meal_plans WHERE user_id IS NULL ORDER BY day, meal, item")
	if err != nil {
		return 0, fmt.Errorf("select defaults: %w", err)
	}
	defaults, err := pgx.CollectRows(rows, pgx.RowToStructByName[mealPlan])
	if err != nil {
		return 0, fmt.Errorf("scan defaults: %w", err)
	}
	if len(defaults) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, d := range defaults {
		batch.Queue(
			`INSERT INTO meal_plans (id, user_id, day, meal, item, calories, protein, carbs, fat, lactose, gluten)
			 VALUES (@id, @userID, @day, @meal, @item, @calories, @protein, @carbs, @fat, @lactose, @gluten)`,
			pgx.NamedArgs{
				"id": uuid.NewString(), "userID": userID, "day": d.Day, "meal": d.Meal, "item": d.Item,
				"calories": d.Calories, "protein": d.Protein, "carbs": d.Carbs, "fat": d.Fat,
				"lactose": d.Lactose, "gluten": d.Gluten,
			})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert copies: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(defaults), nil
}

// getMealPlans returns the weekly menu entries for the weekday of date,
// grouped by meal slot. A user with no menu yet gets a copy of the defaults.
// GET /api/meal-plans?date=YYYY-MM-DD (defaults to today in the meal time zone).
func (h *Handler) getMealPlans(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", h.localNow().Format("2006-01-02"))

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	args := pgx.NamedArgs{"userID": userID}
	plans, err := queryMany[mealPlan](h.db, c, selectUserMealPlans, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch meal plans")
		return
	}

	if len(plans) == 0 {
		copied, err := h.copyDefaultMenu(c, userID)
		if err != nil {
			log.Printf("[getMealPlans] default menu copy failed for user %d: %v", userID, err)
			apiError(c, http.StatusInternalServerError, "failed to create meal plans")
			return
		}
		if copied > 0 {
			log.Printf("[getMealPlans] copied %d default meal plans for user %d", copied, userID)
		}
		plans, err = queryMany[mealPlan](h.db, c, selectUserMealPlans, args)
		if err != nil {
			apiError(c, http.StatusInternalServerError, "failed to fetch meal plans")
			return
		}
	}

	c.JSON(http.StatusOK, buildDailyMenu(day, menuItems(plans)))
}

// buildDailyMenu filters items to day's weekday and groups them by slot.
func buildDailyMenu(day time.Time, items []nutrition.MenuItem) dailyMenu {
	return dailyMenu{
		Date:    day.Format("2006-01-02"),
		Day:     day.Weekday().String(),
		Windows: nutrition.MealWindows(),
		Meals:   nutrition.GroupBySlot(nutrition.ItemsForDay(items, day.Weekday())),
	}
}
