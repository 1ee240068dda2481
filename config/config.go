package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port           string
	LogLevel       log.Level
	GinMode        string
	MaxSubjects    int
	MaxSemesters   int
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first; variables already set
// in the shell take precedence over it.
func Load() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	level := log.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		parsed, err := log.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
		}
		level = parsed
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "release"
	}

	maxSubjects, err := positiveInt("MAX_SUBJECTS", 10)
	if err != nil {
		return nil, err
	}
	maxSemesters, err := positiveInt("MAX_SEMESTERS", 12)
	if err != nil {
		return nil, err
	}

	rps := 20.0
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		rps, err = strconv.ParseFloat(s, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("RATE_LIMIT_RPS must be a non-negative number, got %q", s)
		}
	}

	burst := 40
	if s := os.Getenv("RATE_LIMIT_BURST"); s != "" {
		burst, err = strconv.Atoi(s)
		if err != nil || burst < 0 {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be a non-negative integer, got %q", s)
		}
	}

	return &Config{
		Port:           port,
		LogLevel:       level,
		GinMode:        ginMode,
		MaxSubjects:    maxSubjects,
		MaxSemesters:   maxSemesters,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}, nil
}

func positiveInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return n, nil
}
