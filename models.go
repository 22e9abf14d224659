package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"lg/meal-planner-go-api/nutrition"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns into DateOnly. NULL zeroes the time.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// userProfile maps to user_profiles, one row per user. Body fields are
// nullable so a freshly created user has a row before the BMR form is done.
// BMR and TDEE are stored rounded, the way the dashboard displays them.
type userProfile struct {
	UserID        int        `json:"user_id"        db:"user_id"`
	Age           *int       `json:"age"            db:"age"`
	Gender        *string    `json:"gender"         db:"gender"`
	HeightCM      *float64   `json:"height_cm"      db:"height_cm"`
	WeightKG      *float64   `json:"weight_kg"      db:"weight_kg"`
	ActivityLevel *string    `json:"activity_level" db:"activity_level"`
	FitnessGoal   string     `json:"fitness_goal"   db:"fitness_goal"`
	BMR           *int       `json:"bmr"            db:"bmr"`
	TDEE          *int       `json:"tdee"           db:"tdee"`
	CreatedAt     *time.Time `json:"created_at"     db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"     db:"updated_at"`

	// Computed from TDEE and goal on read; not stored.
	Macros *nutrition.MacroBudget `json:"macros,omitempty" db:"-"`
}

// biometrics returns the calculator inputs when every body field is set.
func (p *userProfile) biometrics() (nutrition.BiometricInput, nutrition.ActivityLevel, bool) {
	if p.Age == nil || p.Gender == nil || p.HeightCM == nil || p.WeightKG == nil || p.ActivityLevel == nil {
		return nutrition.BiometricInput{}, "", false
	}
	in := nutrition.BiometricInput{
		Age:      *p.Age,
		Gender:   nutrition.Gender(*p.Gender),
		HeightCM: *p.HeightCM,
		WeightKG: *p.WeightKG,
	}
	return in, nutrition.ActivityLevel(*p.ActivityLevel), true
}

// complete reports whether the BMR step has been finished.
func (p *userProfile) complete() bool {
	return p.BMR != nil && p.TDEE != nil && *p.BMR > 0 && *p.TDEE > 0
}

// mealPlan maps to meal_plans. Rows with a NULL user_id are the default menu
// every new user is seeded from.
type mealPlan struct {
	ID        uuid.UUID  `json:"id"         db:"id"`
	UserID    *int       `json:"user_id"    db:"user_id"`
	Day       string     `json:"day"        db:"day"`
	Meal      string     `json:"meal"       db:"meal"`
	Item      string     `json:"item"       db:"item"`
	Calories  int        `json:"calories"   db:"calories"`
	Protein   int        `json:"protein"    db:"protein"`
	Carbs     int        `json:"carbs"      db:"carbs"`
	Fat       int        `json:"fat"        db:"fat"`
	Lactose   bool       `json:"lactose"    db:"lactose"`
	Gluten    bool       `json:"gluten"     db:"gluten"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

func (m mealPlan) menuItem() nutrition.MenuItem {
	return nutrition.MenuItem{
		ID:       m.ID.String(),
		Day:      m.Day,
		Meal:     m.Meal,
		Item:     m.Item,
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
		Lactose:  m.Lactose,
		Gluten:   m.Gluten,
	}
}

func menuItems(plans []mealPlan) []nutrition.MenuItem {
	items := make([]nutrition.MenuItem, len(plans))
	for i, p := range plans {
		items[i] = p.menuItem()
	}
	return items
}

// mealSelectionRow is a logged menu item joined with its meal_plans row.
type mealSelectionRow struct {
	ID         uuid.UUID `db:"id"`
	MealPlanID uuid.UUID `db:"meal_plan_id"`
	Date       DateOnly  `db:"date"`
	Day        string    `db:"day"`
	Meal       string    `db:"meal"`
	Item       string    `db:"item"`
	Calories   int       `db:"calories"`
	Protein    int       `db:"protein"`
	Carbs      int       `db:"carbs"`
	Fat        int       `db:"fat"`
	Lactose    bool      `db:"lactose"`
	Gluten     bool      `db:"gluten"`
}

// mealSelection is one entry of the GET /api/meal-selections response.
type mealSelection struct {
	ID         string             `json:"id"`
	MealPlanID string             `json:"meal_plan_id"`
	Date       DateOnly           `json:"date"`
	Slot       nutrition.MealSlot `json:"slot"`
	Item       nutrition.MenuItem `json:"item"`
}

func (r mealSelectionRow) selection() mealSelection {
	item := nutrition.MenuItem{
		ID:       r.MealPlanID.String(),
		Day:      r.Day,
		Meal:     r.Meal,
		Item:     r.Item,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
		Lactose:  r.Lactose,
		Gluten:   r.Gluten,
	}
	slot, _ := item.Slot()
	return mealSelection{
		ID:         r.ID.String(),
		MealPlanID: r.MealPlanID.String(),
		Date:       r.Date,
		Slot:       slot,
		Item:       item,
	}
}

// dailySelections is the response shape for GET /api/meal-selections.
type dailySelections struct {
	Date         string                    `json:"date"`
	Goal         nutrition.FitnessGoal     `json:"goal"`
	Budget       *nutrition.MacroBudget    `json:"budget"`
	Totals       nutrition.NutritionTotals `json:"totals"`
	CaloriesLeft *int                      `json:"calories_left"`
	Selections   []mealSelection           `json:"selections"`
}

// dailyMenu is the response shape for GET /api/meal-plans.
type dailyMenu struct {
	Date    string                                      `json:"date"`
	Day     string                                      `json:"day"`
	Windows []nutrition.MealWindow                      `json:"windows"`
	Meals   map[nutrition.MealSlot][]nutrition.MenuItem `json:"meals"`
}

/* ─── Request bodies ─────────────────────────────────────────────────── */

// patchProfileRequest is the request body for PATCH /api/profile. Only
// non-nil fields are written.
type patchProfileRequest struct {
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	FitnessGoal   *string  `json:"fitness_goal"`
}

// calculateRequest is the request body for POST /api/nutrition/calculate.
type calculateRequest struct {
	nutrition.BiometricInput
	ActivityLevel string `json:"activity_level"`
	FitnessGoal   string `json:"fitness_goal"`
}

// calculateResponse rounds BMR and TDEE for display; macros are computed from
// the unrounded TDEE.
type calculateResponse struct {
	BMR    int                   `json:"bmr"`
	TDEE   int                   `json:"tdee"`
	Goal   nutrition.FitnessGoal `json:"goal"`
	Macros nutrition.MacroBudget `json:"macros"`
}

// createSelectionRequest is the request body for POST /api/meal-selections.
type createSelectionRequest struct {
	MealPlanID string `json:"meal_plan_id"`
	Date       string `json:"date"`
}
