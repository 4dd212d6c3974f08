package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	ServerPort     string
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	JWTSecret      string
	JWTExpiration  time.Duration
	RequestTimeout time.Duration
	AllowedOrigins []string
	PasswordMinLen int
	AdminEmail     string
	AdminPassword  string
	Export         ExportConfig
}

// ExportConfig selects where generated CSV reports are archived.
type ExportConfig struct {
	Storage      string // none, local or s3
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	var p envParser
	cfg := &Config{
		Env:            getEnv("ENV", "dev"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/timesheet"),
		DBMaxOpenConns: p.intEnv("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: p.intEnv("DB_MAX_IDLE_CONNS", 5),
		JWTSecret:      getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:  p.durationEnv("JWT_EXPIRES_IN", 24*time.Hour),
		RequestTimeout: p.durationEnv("REQUEST_TIMEOUT", 15*time.Second),
		AllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		PasswordMinLen: p.intEnv("PASSWORD_MIN_LENGTH", 6),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		Export: ExportConfig{
			Storage:      getEnv("EXPORT_STORAGE", "none"),
			LocalPath:    getEnv("EXPORT_LOCAL_PATH", "./storage/exports"),
			S3Bucket:     getEnv("AWS_S3_BUCKET", ""),
			S3Region:     getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}

	if cfg.Env == "prod" && cfg.JWTSecret == "your-super-secret-key-change-in-production" {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}
	if cfg.JWTExpiration <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}

	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// envParser collects parse failures; Load reports them together.
type envParser struct {
	errs []error
}

func (p *envParser) intEnv(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, value))
		return defaultValue
	}
	return parsed
}

func (p *envParser) durationEnv(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q (use a unit, e.g. 15s)", key, value))
		return defaultValue
	}
	return parsed
}

func splitCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
