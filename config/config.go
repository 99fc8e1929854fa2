package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// App holds every runtime setting the services need. Values are read once
// at startup and injected into the services, never read from the
// environment again.
type App struct {
	Port    string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	FromEmail     string
	OperatorEmail string

	// ReservationDuration is the fixed slot every booking occupies.
	ReservationDuration time.Duration
	Location            *time.Location
}

// Load reads configuration from environment variables, applying defaults
// where a value is optional.
func Load() (*App, error) {
	cfg := &App{
		Port:          getEnv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBName:        getEnv("DB_NAME", "restaurant"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		FromEmail:     getEnv("FROM_EMAIL", "no-reply@newtreichville.com"),
		OperatorEmail: getEnv("OPERATOR_EMAIL", "manager@newtreichville.com"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = smtpPort

	minutes, err := strconv.Atoi(getEnv("RESERVATION_DURATION_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESERVATION_DURATION_MINUTES: %w", err)
	}
	if minutes <= 0 {
		return nil, fmt.Errorf("RESERVATION_DURATION_MINUTES must be positive, got %d", minutes)
	}
	cfg.ReservationDuration = time.Duration(minutes) * time.Minute

	loc, err := time.LoadLocation(getEnv("RESTAURANT_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

// InitDB opens the MySQL connection described by the config.
func (a *App) InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		a.DBUser, a.DBPass, a.DBHost, a.DBPort, a.DBName)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
