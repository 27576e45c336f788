package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GO_ENV", "production")
	t.Setenv("EVENT_NAME", "Ana & Luis Wedding")
	t.Setenv("EVENT_LOCATION", "Quinta do Lago")
	t.Setenv("EVENT_DATE", "2026-07-18T16:00:00Z")
	t.Setenv("RSVP_DEADLINE", "2026-06-01")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"PORT", "DATABASE_URL", "STORE_DRIVER", "PUBLIC_BASE_URL", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST", "EMAIL_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.NotEmpty(t, cfg.DBUrl)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "noop", cfg.Mailer.Provider)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, "Ana & Luis Wedding", cfg.Event.Name)
	assert.Equal(t, "Quinta do Lago", cfg.Event.Location)
	assert.True(t, cfg.Event.Date.Equal(time.Date(2026, 7, 18, 16, 0, 0, 0, time.UTC)))
	assert.True(t, cfg.Event.RSVPDeadline.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("PUBLIC_BASE_URL", "https://rsvp.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("RATE_LIMIT_BURST", "2")
	t.Setenv("EMAIL_PROVIDER", "SES")
	t.Setenv("EMAIL_FROM_ADDRESS", "rsvp@example.com")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "https://rsvp.example.com", cfg.PublicBaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.Equal(t, 2, cfg.RateLimitBurst)
	assert.Equal(t, "ses", cfg.Mailer.Provider)
	assert.Equal(t, "rsvp@example.com", cfg.Mailer.FromAddress)
	assert.Equal(t, "eu-west-1", cfg.Mailer.SES.Region)
	assert.True(t, cfg.Mailer.SES.InsecureSkipVerify)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing event date", "EVENT_DATE", "", "EVENT_DATE is required"},
		{"missing deadline", "RSVP_DEADLINE", "", "RSVP_DEADLINE is required"},
		{"bad deadline", "RSVP_DEADLINE", "next friday", "RSVP_DEADLINE"},
		{"bad rate", "RATE_LIMIT_PER_MINUTE", "fast", "RATE_LIMIT_PER_MINUTE"},
		{"negative burst", "RATE_LIMIT_BURST", "-1", "RATE_LIMIT_BURST"},
		{"unknown driver", "STORE_DRIVER", "mongo", "STORE_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-06-01", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2026-06-01T23:59:59", time.Date(2026, 6, 1, 23, 59, 59, 0, time.UTC)},
		{"2026-06-01T18:30", time.Date(2026, 6, 1, 18, 30, 0, 0, time.UTC)},
		{"2026-06-01T23:59:59+02:00", time.Date(2026, 6, 1, 21, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ParseTime("01/06/2026")
	assert.Error(t, err)
}
