package main

import (
	"fmt"
	"time"
)

// config is the process configuration, read from the environment (and .env
// via godotenv in main).
type config struct {
	DBURL             string
	Addr              string
	MealLocation      *time.Location // zone used to classify the current meal
	MealClockInterval time.Duration  // how often the meal clock re-checks
}

const (
	defaultAddr              = "localhost:3000"
	defaultMealClockInterval = time.Minute
)

// loadConfig builds a config from getenv (os.Getenv in production). DB_URL is
// required; everything else has a default.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		DBURL:             getenv("DB_URL"),
		Addr:              getenv("ADDR"),
		MealLocation:      time.Local,
		MealClockInterval: defaultMealClockInterval,
	}
	if cfg.DBURL == "" {
		return config{}, fmt.Errorf("DB_URL is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	if tz := getenv("MEAL_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return config{}, fmt.Errorf("MEAL_TIMEZONE: %w", err)
		}
		cfg.MealLocation = loc
	}

	if s := getenv("MEAL_CLOCK_INTERVAL"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return config{}, fmt.Errorf("MEAL_CLOCK_INTERVAL: %w", err)
		}
		if d <= 0 {
			return config{}, fmt.Errorf("MEAL_CLOCK_INTERVAL must be positive, got %s", d)
		}
		cfg.MealClockInterval = d
	}

	return cfg, nil
}
