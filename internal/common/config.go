package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Mail    MailConfig
	Extract ExtractConfig
	Export  ExportConfig
	Cache   CacheConfig
}

// MailConfig holds mail-provider configuration
type MailConfig struct {
	Sender          string
	SubjectKeywords []string
	StartDate       string // YYYY-MM-DD, empty means unbounded
	EndDate         string // YYYY-MM-DD, empty means unbounded
	MaxMessages     int64
	CredentialsFile string
	TokenFile       string
	FetchMaxRetries uint64
	FetchBackoff    time.Duration
	ContentMarkers  []string
	MinMarkers      int
}

// ExtractConfig holds extraction-engine configuration
type ExtractConfig struct {
	Window    int    // bounded scan window after a marker line
	RulesFile string // optional JSON rule overrides
}

// ExportConfig holds output configuration
type ExportConfig struct {
	CSVPath  string
	XLSXPath string
}

// CacheConfig holds local fetch-cache configuration
type CacheConfig struct {
	Path    string
	Enabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Mail: MailConfig{
			Sender:          getEnv("MAIL_SENDER", "noreply@swiggy.in"),
			SubjectKeywords: getEnvAsList("MAIL_SUBJECT_KEYWORDS", []string{"successfully delivered", "order delivered"}),
			StartDate:       getEnv("MAIL_START_DATE", ""),
			EndDate:         getEnv("MAIL_END_DATE", ""),
			MaxMessages:     int64(getEnvAsInt("MAIL_MAX_MESSAGES", 500)),
			CredentialsFile: getEnv("MAIL_CREDENTIALS_FILE", "auth/credentials.json"),
			TokenFile:       getEnv("MAIL_TOKEN_FILE", "auth/token.json"),
			FetchMaxRetries: uint64(getEnvAsInt("MAIL_FETCH_MAX_RETRIES", 4)),
			FetchBackoff:    getEnvAsDuration("MAIL_FETCH_BACKOFF", 500*time.Millisecond),
			ContentMarkers:  getEnvAsList("MAIL_CONTENT_MARKERS", nil),
			MinMarkers:      getEnvAsInt("MAIL_MIN_MARKERS", 3),
		},
		Extract: ExtractConfig{
			Window:    getEnvAsInt("EXTRACT_WINDOW", 2),
			RulesFile: getEnv("EXTRACT_RULES_FILE", ""),
		},
		Export: ExportConfig{
			CSVPath:  getEnv("EXPORT_CSV_PATH", "orders.csv"),
			XLSXPath: getEnv("EXPORT_XLSX_PATH", ""),
		},
		Cache: CacheConfig{
			Path:    getEnv("CACHE_PATH", "orders-cache.db"),
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Mail.Sender == "" {
		return NewAppError("CONFIG_ERROR", "MAIL_SENDER is required", ErrInvalidInput)
	}
	if c.Extract.Window < 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_WINDOW must be >= 0", ErrInvalidInput)
	}
	if c.Mail.MinMarkers < 1 {
		return NewAppError("CONFIG_ERROR", "MAIL_MIN_MARKERS must be >= 1", ErrInvalidInput)
	}
	if c.Export.CSVPath == "" {
		return NewAppError("CONFIG_ERROR", "EXPORT_CSV_PATH is required", ErrInvalidInput)
	}
	return nil
}
