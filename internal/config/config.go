package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the estimator settings loaded from the environment.
type Config struct {
	LogLevel        string
	LogFormat       string
	OffersPath      string
	InputPath       string
	OutputPath      string
	WeightRate      int64
	DistanceRate    int64
	MetricsTextfile string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load()
}

func load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	weightRate, err := parseRate(k.String("COST_PER_KG"), 10)
	if err != nil {
		return nil, fmt.Errorf("COST_PER_KG: %w", err)
	}
	distanceRate, err := parseRate(k.String("COST_PER_KM"), 5)
	if err != nil {
		return nil, fmt.Errorf("COST_PER_KM: %w", err)
	}

	return &Config{
		LogLevel:        valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:       valueOrDefault(k.String("LOG_FORMAT"), "console"),
		OffersPath:      valueOrDefault(k.String("OFFERS_PATH"), "data/offers.json"),
		InputPath:       strings.TrimSpace(k.String("INPUT_PATH")),
		OutputPath:      strings.TrimSpace(k.String("OUTPUT_PATH")),
		WeightRate:      weightRate,
		DistanceRate:    distanceRate,
		MetricsTextfile: strings.TrimSpace(k.String("METRICS_TEXTFILE")),
	}, nil
}

// LoadForTests skips the .env file so tests only see what they set.
func LoadForTests() (*Config, error) {
	return load()
}

// Get returns the environment value for key, or fallback when it is unset
// or blank.
func Get(key, fallback string) string {
	return valueOrDefault(os.Getenv(key), fallback)
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseRate(value string, fallback int64) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", value, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("rate must be >= 0 (rate=%d)", n)
	}
	return n, nil
}
