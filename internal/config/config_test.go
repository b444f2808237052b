package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-crm-service/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LOW_PERFORMANCE_THRESHOLD", "")
	t.Setenv("MINIMUM_DAILY_LEADS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("ALERT_EMAIL_TO", "")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, config.DefaultLowPerformanceThreshold, cfg.LowPerformanceThreshold)
	assert.Equal(t, config.DefaultMinimumDailyLeads, cfg.MinimumDailyLeads)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.False(t, cfg.MailEnabled())
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg config.Config)
	}{
		{
			name: "Overrides",
			env: map[string]string{
				"LOW_PERFORMANCE_THRESHOLD": "3",
				"MINIMUM_DAILY_LEADS":       "12",
				"ALERT_EMAIL_TO":            "a@example.com, b@example.com",
				"SMTP_HOST":                 "smtp.example.com",
				"REVENUE_YEAR":              "2024",
			},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 3, cfg.LowPerformanceThreshold)
				assert.Equal(t, 12, cfg.MinimumDailyLeads)
				assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AlertEmailTo)
				assert.True(t, cfg.MailEnabled())
				assert.Equal(t, 2024, cfg.RevenueYear)
			},
		},
		{
			name: "Invalid number keeps default",
			env:  map[string]string{"MINIMUM_DAILY_LEADS": "many"},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, config.DefaultMinimumDailyLeads, cfg.MinimumDailyLeads)
			},
		},
		{
			name:    "Postgres without DSN",
			env:     map[string]string{"STORAGE_DRIVER": "postgres", "DB_DSN": ""},
			wantErr: true,
		},
		{
			name:    "Unknown driver",
			env:     map[string]string{"STORAGE_DRIVER": "redis"},
			wantErr: true,
		},
		{
			name:    "Bad timezone",
			env:     map[string]string{"APP_TIMEZONE": "Mars/Olympus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_TIMEZONE", "UTC")
			t.Setenv("STORAGE_DRIVER", "memory")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.FromEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
