package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberflow/barberflow-api/schedule"
)

// Config holds everything the process needs, loaded once at startup.
// It is never mutated after Load returns.
type Config struct {
	DatabaseURL string
	RedisAddr   string
	Port        string

	AdminKeyHash []byte
	JWTSecret    string

	Location    *time.Location
	Windows     []schedule.Window
	Granularity int // slot grid step, minutes

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
}

// Load reads the environment (and .env if present) into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		Port:        getenv("PORT", "8000"),
		JWTSecret:   getenv("JWT_SECRET", "solid_secret_key"),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		EmailUser:   os.Getenv("EMAIL_USER"),
		EmailPass:   os.Getenv("EMAIL_PASS"),
	}
	cfg.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))

	if hash := os.Getenv("ADMIN_KEY_HASH"); hash != "" {
		cfg.AdminKeyHash = []byte(hash)
	} else {
		key := getenv("ADMIN_KEY", "barberflowadmin")
		hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin key: %w", err)
		}
		cfg.AdminKeyHash = hashed
	}

	loc, err := time.LoadLocation(getenv("SHOP_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHOP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	windows, err := ParseWindows(getenv("SHOP_HOURS", "09:00-12:00,14:00-18:00"))
	if err != nil {
		return nil, err
	}
	cfg.Windows = windows

	granularity, err := strconv.Atoi(getenv("SLOT_GRANULARITY_MINUTES", "15"))
	if err != nil || granularity <= 0 {
		return nil, fmt.Errorf("SLOT_GRANULARITY_MINUTES must be a positive integer")
	}
	cfg.Granularity = granularity

	return cfg, nil
}

// ParseWindows parses a comma-separated list of HH:MM-HH:MM ranges.
func ParseWindows(s string) ([]schedule.Window, error) {
	parts := strings.Split(s, ",")
	windows := make([]schedule.Window, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid shop hours range %q", part)
		}
		w := schedule.Window{Start: strings.TrimSpace(bounds[0]), End: strings.TrimSpace(bounds[1])}
		start, err := schedule.ParseClockToMinutes(w.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid shop hours start %q", w.Start)
		}
		end, err := schedule.ParseClockToMinutes(w.End)
		if err != nil {
			return nil, fmt.Errorf("invalid shop hours end %q", w.End)
		}
		if start >= end {
			return nil, fmt.Errorf("shop hours range %q must start before it ends", part)
		}
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("no shop hours configured")
	}
	return windows, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
