package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Combat CombatConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CombatConfig holds pacing and determinism knobs for the combat engine
type CombatConfig struct {
	// TurnDelay is the UX pause between the player's action resolving and
	// the enemy turn firing
	TurnDelay time.Duration

	// Seed overrides the dice seed when non-zero (useful for replays)
	Seed int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Combat: CombatConfig{
			TurnDelay: time.Duration(getEnvAsIntOrDefault("COMBAT_TURN_DELAY_MS", 1500)) * time.Millisecond,
			Seed:      int64(getEnvAsIntOrDefault("COMBAT_DICE_SEED", 0)),
		},
	}

	if cfg.Combat.TurnDelay < 0 {
		return nil, fmt.Errorf("COMBAT_TURN_DELAY_MS must not be negative")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
