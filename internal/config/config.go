package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/google"
	"github.com/krastod/airdropscout/internal/logging"
)

const (
	minTemperature = 0.0
	maxTemperature = 2.0
)

// ErrMissingAPIKey is returned by Load when no Gemini credential is set.
var ErrMissingAPIKey = errors.New("missing API key: set GEMINI_API_KEY (or API_KEY, GOOGLE_API_KEY)")

// apiKeyVars are checked in order; the first non-empty one wins.
var apiKeyVars = []string{"GEMINI_API_KEY", "API_KEY", "GOOGLE_API_KEY"}

// Config holds 12-factor environment configuration read once at startup.
type Config struct {
	APIKey       string
	Model        string
	BaseURL      string
	Temperature  float64
	Language     airdropscout.Language
	Addr         string
	CORSOrigin   string
	LogLevel     slog.Level
	OTLPEndpoint string
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseFloatEnv(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Load reads configuration from the environment with defaults and clamps.
// It fails only when no API key is configured.
func Load() (Config, error) {
	cfg := LoadWithoutKey()
	for _, key := range apiKeyVars {
		if v := env(key, ""); v != "" {
			cfg.APIKey = v
			break
		}
	}
	if cfg.APIKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}

// LoadWithoutKey reads every setting except the credential. Commands that
// never reach the model, such as classify, use it directly.
func LoadWithoutKey() Config {
	return Config{
		Model:        env("GEMINI_MODEL", google.DefaultModelID),
		BaseURL:      env("GEMINI_BASE_URL", ""),
		Temperature:  clampFloat(parseFloatEnv("AIRDROPSCOUT_TEMPERATURE", airdropscout.DefaultTemperature), minTemperature, maxTemperature),
		Language:     airdropscout.ParseLanguage(env("AIRDROPSCOUT_LANGUAGE", string(airdropscout.LanguageEnglish))),
		Addr:         env("AIRDROPSCOUT_ADDR", ":8080"),
		CORSOrigin:   env("AIRDROPSCOUT_CORS_ORIGIN", "*"),
		LogLevel:     logging.ParseLevel(env("AIRDROPSCOUT_LOG_LEVEL", "info")),
		OTLPEndpoint: env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// RedactKey hides all but the last four characters of an API key.
func RedactKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// LogValue keeps the credential out of structured logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_key", RedactKey(c.APIKey)),
		slog.String("model", c.Model),
		slog.String("base_url", c.BaseURL),
		slog.Float64("temperature", c.Temperature),
		slog.String("language", string(c.Language)),
		slog.String("addr", c.Addr),
		slog.String("cors_origin", c.CORSOrigin),
		slog.String("log_level", c.LogLevel.String()),
		slog.Bool("tracing", c.OTLPEndpoint != ""),
	)
}
