package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Environment & metrics
	Env            string // development, staging, production
	MetricsEnabled bool
	MetricsPath    string

	// Logging settings
	LogLevel  string
	LogFormat string // "json" or "text"

	// HTTP server timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Vocabulary overrides
	VocabDir string // path to external vocabulary dir; empty = built-in only

	// DefaultLanguages are tried in order when a request names none.
	DefaultLanguages []string
}

func Load() *Config {
	env := strings.ToLower(getEnv("ENV", "development"))

	// Metrics default on outside production
	metricsDefault := env == "development" || env == "staging"
	metricsEnabled, _ := strconv.ParseBool(getEnv("METRICS_ENABLED", strconv.FormatBool(metricsDefault)))

	// Timeouts
	readTO, _ := time.ParseDuration(getEnv("READ_TIMEOUT", "5s"))
	writeTO, _ := time.ParseDuration(getEnv("WRITE_TIMEOUT", "10s"))
	shutdownTO, _ := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "15s"))

	var languages []string
	for _, lang := range strings.Split(getEnv("DEFAULT_LANGUAGES", "en"), ",") {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			languages = append(languages, lang)
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		MetricsEnabled:  metricsEnabled,
		MetricsPath:     getEnv("METRICS_PATH", "/metrics"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ReadTimeout:     readTO,
		WriteTimeout:    writeTO,
		ShutdownTimeout: shutdownTO,
		VocabDir:        getEnv("VOCAB_DIR", ""),

		DefaultLanguages: languages,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
