//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bluehaven/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	baseEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoreBackendFile, cfg.Store.Backend)
	assert.Equal(t, 6, cfg.Property.Capacity)
	assert.Equal(t, 90, cfg.Property.MaxNights)
	assert.Equal(t, int64(500_00), cfg.Property.NightlyRateCents)
	assert.Equal(t, "confirmed_pending", cfg.Property.OccupancyPolicy)
	assert.Equal(t, 168*time.Hour, cfg.JWT.GuestDuration)
	assert.Equal(t, []string{"admin@bluehaven.co.za"}, cfg.Admin.SuperEmails)
	assert.False(t, cfg.Mail.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_DotEnvFillsUnsetVariables(t *testing.T) {
	baseEnv(t)
	t.Setenv("PROPERTY_CAPACITY", "4")
	dotenv := "PROPERTY_CAPACITY=8\nKAFKA_BROKERS=kafka-1:9092,kafka-2:9092\nEMAILJS_SERVICE_ID=svc\nEMAILJS_PUBLIC_KEY=pub\n"
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte(dotenv), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"KAFKA_BROKERS", "EMAILJS_SERVICE_ID", "EMAILJS_PUBLIC_KEY"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Property.Capacity, "process environment wins over .env")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Mail.Enabled())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"STORE_BACKEND": "sqlite"}},
		{name: "postgres without credentials", env: map[string]string{"STORE_BACKEND": "postgres"}},
		{name: "malformed duration", env: map[string]string{"JWT_GUEST_DURATION": "a week"}},
		{name: "zero max nights", env: map[string]string{"PROPERTY_MAX_NIGHTS": "0"}},
		{
			name: "postgres with confirmed-only occupancy",
			env: map[string]string{
				"STORE_BACKEND":             "postgres",
				"DB_USER":                   "bh",
				"DB_PASSWORD":               "bh",
				"PROPERTY_OCCUPANCY_POLICY": "confirmed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_OccupancyPerBackend(t *testing.T) {
	t.Run("file store accepts confirmed-only", func(t *testing.T) {
		baseEnv(t)
		t.Setenv("PROPERTY_OCCUPANCY_POLICY", "confirmed")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "confirmed", cfg.Property.OccupancyPolicy)
	})

	t.Run("postgres accepts confirmed and pending", func(t *testing.T) {
		baseEnv(t)
		t.Setenv("STORE_BACKEND", "postgres")
		t.Setenv("DB_USER", "bh")
		t.Setenv("DB_PASSWORD", "bh")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.OccupancyConfirmedPending, cfg.Property.OccupancyPolicy)
	})
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestPropertyConfig_Location(t *testing.T) {
	loc := config.PropertyConfig{TimeZone: "Africa/Johannesburg"}.Location()
	_, offset := time.Date(2026, 7, 1, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, 2*60*60, offset)

	assert.Equal(t, time.UTC, config.PropertyConfig{TimeZone: "Mars/Olympus_Mons"}.Location())
}
