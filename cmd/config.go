package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AutoAssignSchedule is a six-field cron expression; empty disables the job.
	AutoAssignSchedule string
	// TariffPolicyFile is an optional YAML file overriding the default tariff policy.
	TariffPolicyFile string

	// RateLimit is the allowed API requests per second per client; 0 disables it.
	RateLimit float64
	RateBurst int

	ShutdownTimeout time.Duration
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads configuration in order: .env (if present), environment,
// then command-line flags. Later sources win.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{
		HTTPPort:           envString("HTTP_PORT", "8080"),
		DBHost:             envString("DB_HOST", "localhost"),
		DBPort:             envString("DB_PORT", "5432"),
		DBUser:             envString("DB_USER", "postgres"),
		DBPassword:         envString("DB_PASSWORD", ""),
		DBName:             envString("DB_NAME", "delivery"),
		DBSslMode:          envString("DB_SSLMODE", "disable"),
		AutoAssignSchedule: envString("AUTO_ASSIGN_SCHEDULE", "0 * * * * *"),
		TariffPolicyFile:   envString("TARIFF_POLICY_FILE", ""),
	}

	var err error
	if cfg.RateLimit, err = envFloat("RATE_LIMIT_RPS", 0); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = envInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	flags := pflag.NewFlagSet("zonedelivery", pflag.ContinueOnError)
	flags.StringVarP(&cfg.HTTPPort, "port", "p", cfg.HTTPPort, "HTTP port to listen on")
	flags.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "Postgres host")
	flags.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "Postgres port")
	flags.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "Postgres user")
	flags.StringVar(&cfg.DBPassword, "db-password", cfg.DBPassword, "Postgres password")
	flags.StringVar(&cfg.DBName, "db-name", cfg.DBName, "Postgres database")
	flags.StringVar(&cfg.DBSslMode, "db-sslmode", cfg.DBSslMode, "Postgres sslmode")
	flags.StringVar(&cfg.AutoAssignSchedule, "auto-assign-schedule", cfg.AutoAssignSchedule,
		"cron schedule (with seconds) of the courier auto-assignment job, empty disables it")
	flags.StringVar(&cfg.TariffPolicyFile, "tariff-policy", cfg.TariffPolicyFile, "YAML tariff policy file")
	flags.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "API requests per second per client, 0 disables")
	flags.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "API request burst per client")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")

	if err = flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errList []error

	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port <= 0 || port > 65535 {
		errList = append(errList, fmt.Errorf("invalid HTTP port: %q", c.HTTPPort))
	}
	if c.RateLimit < 0 {
		errList = append(errList, fmt.Errorf("invalid rate limit: %v", c.RateLimit))
	}
	if c.RateBurst < 0 {
		errList = append(errList, fmt.Errorf("invalid rate burst: %d", c.RateBurst))
	}
	if c.ShutdownTimeout <= 0 {
		errList = append(errList, fmt.Errorf("invalid shutdown timeout: %s", c.ShutdownTimeout))
	}

	return errors.Join(errList...)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
