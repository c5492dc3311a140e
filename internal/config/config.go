package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string

	CodeTTL          time.Duration
	IssueLimit       int
	IssueLimitWindow time.Duration
	RedisURL         string

	MessagingAPIURL          string
	MessagingAPIToken        string
	MessagingSenderID        string
	MessagingFallbackNumber  string
	MessagingFallbackEnabled bool

	Currency           string
	CORSAllowedOrigins []string
}

const (
	defaultRunAddress       = ":8080"
	defaultJWTSecret        = "change-me-in-production"
	defaultTokenTTL         = 24 * time.Hour
	defaultShutdownTimeout  = 10 * time.Second
	defaultLogLevel         = "info"
	defaultCodeTTL          = 15 * time.Minute
	defaultIssueLimit       = 5
	defaultIssueLimitWindow = 10 * time.Minute
	defaultMessagingAPIURL  = "https://graph.facebook.com/v19.0"
)

// dotenvFiles is read before the process environment; missing files are ignored.
var dotenvFiles = []string{".env"}

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

func loadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:               getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:              getString(lookup, "DATABASE_URI", ""),
		JWTSecret:                getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:                 getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:          getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:                 getString(lookup, "LOG_LEVEL", defaultLogLevel),
		CodeTTL:                  getDuration(lookup, "CODE_TTL", defaultCodeTTL),
		IssueLimit:               getInt(lookup, "ISSUE_LIMIT", defaultIssueLimit),
		IssueLimitWindow:         getDuration(lookup, "ISSUE_LIMIT_WINDOW", defaultIssueLimitWindow),
		RedisURL:                 getString(lookup, "REDIS_URL", ""),
		MessagingAPIURL:          getString(lookup, "MESSAGING_API_URL", defaultMessagingAPIURL),
		MessagingAPIToken:        getString(lookup, "MESSAGING_API_TOKEN", ""),
		MessagingSenderID:        getString(lookup, "MESSAGING_SENDER_ID", ""),
		MessagingFallbackNumber:  getString(lookup, "MESSAGING_FALLBACK_NUMBER", ""),
		MessagingFallbackEnabled: getBool(lookup, "MESSAGING_FALLBACK_ENABLED", true),
		Currency:                 getString(lookup, "CURRENCY", ""),
	}
	corsOrigins := getString(lookup, "CORS_ALLOWED_ORIGINS", "")

	flags := flag.NewFlagSet("campusmart", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		codeTTLStr         = cfg.CodeTTL.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	flags.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&codeTTLStr, "code-ttl", codeTTLStr, "Verification code lifetime")
	flags.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for issue throttling")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CodeTTL, err = time.ParseDuration(codeTTLStr); err != nil {
		return nil, fmt.Errorf("invalid code ttl: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowedOrigins = splitList(corsOrigins)

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = defaultCodeTTL
	}

	if cfg.IssueLimit <= 0 {
		cfg.IssueLimit = defaultIssueLimit
	}

	if cfg.IssueLimitWindow <= 0 {
		cfg.IssueLimitWindow = defaultIssueLimitWindow
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

// MessagingConfigured reports whether the push API credentials are present.
func (c *Config) MessagingConfigured() bool {
	return c.MessagingAPIToken != "" && c.MessagingSenderID != ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
