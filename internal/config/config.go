// Package config собирает настройки сервиса из окружения (и .env, если он есть).
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

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"

	DefaultHTTPAddr                = ":8080"
	DefaultLowPerformanceThreshold = 5
	DefaultMinimumDailyLeads       = 10
	DefaultQuotaScanCron           = "0 0 17 * * 1-5"
	DefaultSMTPPort                = 587
)

// Config настройки процесса.
type Config struct {
	HTTPAddr      string
	StorageDriver string
	DBDSN         string

	LowPerformanceThreshold int
	MinimumDailyLeads       int
	Location                *time.Location
	RevenueYear             int // 0 означает текущий год

	QuotaScanCron    string
	QuotaScanEnabled bool

	AMQPURL string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	AlertEmailFrom string
	AlertEmailTo   []string

	CORSAllowedOrigins []string
}

// Load читает .env (отсутствие файла не ошибка) и переменные окружения.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv строит Config только из окружения процесса.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:                getEnvString("HTTP_ADDR", DefaultHTTPAddr),
		StorageDriver:           strings.ToLower(getEnvString("STORAGE_DRIVER", DriverMemory)),
		DBDSN:                   os.Getenv("DB_DSN"),
		LowPerformanceThreshold: getEnvInt("LOW_PERFORMANCE_THRESHOLD", DefaultLowPerformanceThreshold),
		MinimumDailyLeads:       getEnvInt("MINIMUM_DAILY_LEADS", DefaultMinimumDailyLeads),
		RevenueYear:             getEnvInt("REVENUE_YEAR", 0),
		QuotaScanCron:           getEnvString("QUOTA_SCAN_CRON", DefaultQuotaScanCron),
		QuotaScanEnabled:        getEnvBool("QUOTA_SCAN_ENABLED", true),
		AMQPURL:                 os.Getenv("AMQP_URL"),
		SMTPHost:                os.Getenv("SMTP_HOST"),
		SMTPPort:                getEnvInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser:                os.Getenv("SMTP_USER"),
		SMTPPass:                os.Getenv("SMTP_PASS"),
		AlertEmailFrom:          os.Getenv("ALERT_EMAIL_FROM"),
		AlertEmailTo:            splitList(os.Getenv("ALERT_EMAIL_TO")),
		CORSAllowedOrigins:      splitList(getEnvString("CORS_ALLOWED_ORIGINS", "*")),
	}

	loc, err := time.LoadLocation(getEnvString("APP_TIMEZONE", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	switch cfg.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return Config{}, errors.New("DB_DSN environment variable is required for postgres storage")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.LowPerformanceThreshold < 0 || cfg.MinimumDailyLeads < 0 {
		return Config{}, errors.New("lead thresholds must not be negative")
	}

	return cfg, nil
}

// MailEnabled сообщает, настроена ли отправка писем.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && len(c.AlertEmailTo) > 0
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
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
