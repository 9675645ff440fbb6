package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServiceName    string
	DatabaseURL    string
	HTTPListenAddr string
	LogLevel       string

	// MaxSearchRadiusKm caps the radius accepted by the search endpoint.
	// Zero disables the cap. This is portal policy, not a property of the
	// distance computation itself.
	MaxSearchRadiusKm float64

	// SendGridAPIKey enables outbound certificate email. When empty the
	// notifier degrades to log-only delivery.
	SendGridAPIKey string
	MailFrom       string
	MailFromName   string
}

func Load() (*Config, error) {
	maxRadius, err := getEnvFloat("MAX_SEARCH_RADIUS_KM", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServiceName:       getEnv("SERVICE_NAME", "geoportal-api"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		HTTPListenAddr:    getEnv("HTTP_LISTEN_ADDR", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MaxSearchRadiusKm: maxRadius,
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		MailFrom:          getEnv("MAIL_FROM", "certificates@geoportal.local"),
		MailFromName:      getEnv("MAIL_FROM_NAME", "Geodetic Certificate Portal"),
	}

	return cfg, nil
}

// Validate checks that the fields required to run the named service are set.
func (c *Config) Validate(service string) error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%s: DATABASE_URL is required", service)
	}
	if c.MaxSearchRadiusKm < 0 {
		return fmt.Errorf("%s: MAX_SEARCH_RADIUS_KM must not be negative", service)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}
