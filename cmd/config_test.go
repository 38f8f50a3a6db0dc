package cmd_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonedelivery/cmd"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"AUTO_ASSIGN_SCHEDULE", "TARIFF_POLICY_FILE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "0 * * * * *", cfg.AutoAssignSchedule)
	assert.Empty(t, cfg.TariffPolicyFile)
	assert.InDelta(t, 0, cfg.RateLimit, 0)
	assert.Equal(t, 20, cfg.RateBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvironmentThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "zones")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "zones")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("AUTO_ASSIGN_SCHEDULE", "*/30 * * * * *")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := cmd.LoadConfig([]string{"--port", "9100", "--rate-burst", "7", "--auto-assign-schedule", ""})

	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.InDelta(t, 5, cfg.RateLimit, 0)
	assert.Equal(t, 7, cfg.RateBurst)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.AutoAssignSchedule)
	assert.Equal(t,
		"host=db.internal port=5433 user=zones password=secret dbname=zones sslmode=require",
		cfg.DSN())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "port is not a number", args: []string{"--port", "http"}},
		{name: "port out of range", args: []string{"--port", "70000"}},
		{name: "negative rate limit", args: []string{"--port", "8080", "--rate-limit", "-1"}},
		{name: "unknown flag", args: []string{"--port", "8080", "--verbose"}},
		{name: "malformed env duration", env: map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
		{name: "malformed env burst", env: map[string]string{"RATE_LIMIT_BURST": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig(tt.args)

			require.Error(t, err)
		})
	}
}
