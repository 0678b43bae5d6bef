package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./circle.db)
	DatabaseURL    string // Required for postgres: connection URL
	PepperFile     string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	AdminSecret       string        // Optional: shared administrator secret; admin surfaces are closed when empty
	MemberTokenSecret string        // Optional: HS256 secret for member tokens; random per process when empty
	MemberTokenTTL    time.Duration // Optional: member token lifetime (default: 24h)
	Issuer            string        // Optional: issuer claim for member tokens (default: circle)
	InviteTTLDays     int           // Optional: invite validity in calendar days (default: 7)
	PublicBaseURL     string        // Optional: prefix for registration links (default: http://localhost:<port>)

	CORSAllowedOrigins  []string      // Optional: comma separated browser origins allowed to call the API
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the environment, after loading ./.env when one exists.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "circle.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),

		AdminSecret:       os.Getenv("ADMIN_SECRET_KEY"),
		MemberTokenSecret: os.Getenv("MEMBER_TOKEN_SECRET"),
		MemberTokenTTL:    getEnvDurationOrDefault("MEMBER_TOKEN_TTL", 24*time.Hour),
		Issuer:            getEnvOrDefault("MEMBER_TOKEN_ISSUER", "circle"),
		InviteTTLDays:     getEnvIntOrDefault("INVITE_TTL_DAYS", 7),
		PublicBaseURL:     os.Getenv("PUBLIC_BASE_URL"),

		CORSAllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	return cfg, cfg.Validate()
}

var (
	ErrUnknownDriver      = errors.New("config: DATABASE_DRIVER must be sqlite or postgres")
	ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required for postgres")
	ErrInvalidInviteTTL   = errors.New("config: INVITE_TTL_DAYS must be positive")
)

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return ErrUnknownDriver
	}
	if c.InviteTTLDays <= 0 {
		return ErrInvalidInviteTTL
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
