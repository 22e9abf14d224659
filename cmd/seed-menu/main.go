// CLI tool to insert the default weekly menu (meal_plans rows with a NULL
// user_id). Does nothing when default rows already exist.
// Usage: go run ./cmd/seed-menu
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lg/meal-planner-go-api/nutrition"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var existing int
	if err := conn.QueryRow(ctx, "SELECT count(*) FROM meal_plans WHERE user_id IS NULL").Scan(&existing); err != nil {
		fmt.Fprintf(os.Stderr, "Error counting default meal plans: %v\n", err)
		os.Exit(1)
	}
	if existing > 0 {
		fmt.Printf("Default menu already has %d item(s), nothing to do.\n", existing)
		return
	}

	rows := seedRows(nutrition.DefaultMenu(), uuid.New)
	n, err := conn.CopyFrom(ctx, pgx.Identifier{"meal_plans"}, seedColumns, pgx.CopyFromRows(rows))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error inserting default meal plans: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Inserted %d default meal plan(s).\n", n)
}

var seedColumns = []string{"id", "day", "meal", "item", "calories", "protein", "carbs", "fat", "lactose", "gluten"}

// seedRows converts menu items to COPY rows in seedColumns order, assigning
// each a fresh ID from newID.
func seedRows(items []nutrition.MenuItem, newID func() uuid.UUID) [][]any {
	rows := make([][]any, len(items))
	for i, m := range items {
		rows[i] = []any{newID(), m.Day, m.Meal, m.Item, m.Calories, m.Protein, m.Carbs, m.Fat, m.Lactose, m.Gluten}
	}
	return rows
}
