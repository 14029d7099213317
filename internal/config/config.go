package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	LogLevel     string
	Port         string

	// Weather Config
	WeatherAPIKey    string
	WeatherAPIURL    string
	WeatherCity      string
	WeatherHotAbove  float64
	WeatherColdBelow float64

	// Telegram Config
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
}

// NewFromEnv creates a new Config object from environment variables. A
// .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func NewFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	hotAbove, err := floatEnv("WEATHER_HOT_ABOVE", 20)
	if err != nil {
		return nil, err
	}
	coldBelow, err := floatEnv("WEATHER_COLD_BELOW", 10)
	if err != nil {
		return nil, err
	}
	if coldBelow > hotAbove {
		return nil, fmt.Errorf("WEATHER_COLD_BELOW must not be greater than WEATHER_HOT_ABOVE")
	}

	allowed, err := parseUserIDs(os.Getenv("TELEGRAM_ALLOWED_USER_IDS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabasePath:           stringEnv("DATABASE_PATH", "data/dinner-planner.db"),
		LogLevel:               stringEnv("LOG_LEVEL", "info"),
		Port:                   stringEnv("PORT", "8080"),
		WeatherAPIKey:          os.Getenv("WEATHER_API_KEY"),
		WeatherAPIURL:          strings.TrimRight(stringEnv("WEATHER_API_URL", "https://api.openweathermap.org"), "/"),
		WeatherCity:            stringEnv("WEATHER_CITY", "London"),
		WeatherHotAbove:        hotAbove,
		WeatherColdBelow:       coldBelow,
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowed,
	}, nil
}

// ValidateTelegram checks the settings the bot cannot run without.
func (c *Config) ValidateTelegram() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramWebhookURL == "" {
		return fmt.Errorf("TELEGRAM_WEBHOOK_URL environment variable not set")
	}
	if len(c.TelegramAllowedUserIDs) == 0 {
		return fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS environment variable not set")
	}
	return nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, raw)
	}
	return v, nil
}

func parseUserIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS must be a comma separated list of user ids, got %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
