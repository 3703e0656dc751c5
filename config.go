package nsgifts

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config bundles client settings for loading from the environment or a
// configuration file. The zero value of every field means "use the
// default". [Config.Client] converts it into a ready-to-connect [Client].
type Config struct {
	BaseURL             string
	Email               string
	Password            string
	MaxRetries          int
	RequestTimeout      time.Duration
	ServerErrorCooldown time.Duration
	TokenRefreshBuffer  time.Duration
}

// ConfigFromEnv reads NSGIFTS_* environment variables. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
//
// Recognised variables: NSGIFTS_BASE_URL, NSGIFTS_EMAIL, NSGIFTS_PASSWORD,
// NSGIFTS_MAX_RETRIES, NSGIFTS_REQUEST_TIMEOUT,
// NSGIFTS_SERVER_ERROR_COOLDOWN, NSGIFTS_TOKEN_REFRESH_BUFFER. Durations
// use Go syntax, e.g. "30s" or "5m".
func ConfigFromEnv() (Config, error) {
	// Missing .env is not an error; variables may come from the process env.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:  os.Getenv("NSGIFTS_BASE_URL"),
		Email:    os.Getenv("NSGIFTS_EMAIL"),
		Password: os.Getenv("NSGIFTS_PASSWORD"),
	}

	if v := os.Getenv("NSGIFTS_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("NSGIFTS_MAX_RETRIES: %w", err)
		}
		cfg.MaxRetries = n
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"NSGIFTS_REQUEST_TIMEOUT", &cfg.RequestTimeout},
		{"NSGIFTS_SERVER_ERROR_COOLDOWN", &cfg.ServerErrorCooldown},
		{"NSGIFTS_TOKEN_REFRESH_BUFFER", &cfg.TokenRefreshBuffer},
	}

	for _, d := range durations {
		v := os.Getenv(d.name)
		if v == "" {
			continue
		}

		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid configuration value.
func (cfg Config) Validate() error {
	if cfg.BaseURL != "" && !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://")
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("max retries must be non-negative")
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must be non-negative")
	}

	if cfg.ServerErrorCooldown < 0 {
		return fmt.Errorf("server error cooldown must be non-negative")
	}

	if cfg.TokenRefreshBuffer < 0 {
		return fmt.Errorf("token refresh buffer must be non-negative")
	}

	if (cfg.Email == "") != (cfg.Password == "") {
		return fmt.Errorf("email and password must be provided together")
	}

	return nil
}

// Client builds a [Client] from the configuration. Extra options are
// applied after the configuration-derived ones and may override them.
func (cfg Config) Client(opts ...Option) *Client {
	configured := make([]Option, 0, len(opts)+5)

	if cfg.Email != "" {
		configured = append(configured, WithCredentials(cfg.Email, cfg.Password))
	}

	if cfg.MaxRetries > 0 {
		configured = append(configured, WithRetryCount(cfg.MaxRetries))
	}

	if cfg.RequestTimeout > 0 {
		configured = append(configured, WithRequestTimeout(cfg.RequestTimeout))
	}

	if cfg.ServerErrorCooldown > 0 {
		configured = append(configured, WithServerErrorCooldown(cfg.ServerErrorCooldown))
	}

	if cfg.TokenRefreshBuffer > 0 {
		configured = append(configured, WithTokenRefreshBuffer(cfg.TokenRefreshBuffer))
	}

	configured = append(configured, opts...)

	return New(cfg.BaseURL, configured...)
}
