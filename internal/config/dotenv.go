package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	GeocoderURL              string
	GeocoderLanguage         string
	GeocoderUserAgent        string
	GeocoderTimeoutSeconds   int
	NotifyBuffer             int
	SMTPAddr                 string
	SMTPFrom                 string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
}

func Default() Config {
	return Config{
		GeocoderURL:              "https://nominatim.openstreetmap.org",
		GeocoderLanguage:         "en",
		GeocoderUserAgent:        "treasure-hunt/1.0",
		GeocoderTimeoutSeconds:   10,
		NotifyBuffer:             64,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("GEOCODER_URL"); raw != "" {
		cfg.GeocoderURL = raw
	}
	if raw := os.Getenv("GEOCODER_LANGUAGE"); raw != "" {
		cfg.GeocoderLanguage = raw
	}
	if raw := os.Getenv("GEOCODER_USER_AGENT"); raw != "" {
		cfg.GeocoderUserAgent = raw
	}
	if raw := os.Getenv("GEOCODER_TIMEOUT_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.GeocoderTimeoutSeconds = value
		}
	}
	if raw := os.Getenv("NOTIFY_BUFFER"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.NotifyBuffer = value
		}
	}
	if raw := os.Getenv("SMTP_ADDR"); raw != "" {
		cfg.SMTPAddr = raw
	}
	if raw := os.Getenv("SMTP_FROM"); raw != "" {
		cfg.SMTPFrom = raw
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_TIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	return cfg
}
