package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" env-default:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	CORSAllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"`
	CORSAllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`

	// ReminderRequireAuth applies the category-style bearer gate to
	// mutating reminder operations.
	ReminderRequireAuth bool `env:"REMINDER_REQUIRE_AUTH" env-default:"false"`

	NoteServiceURL     string `env:"NOTE_SERVICE_URL" env-default:"http://localhost:8081"`
	CategoryServiceURL string `env:"CATEGORY_SERVICE_URL" env-default:"http://localhost:8082"`
	ReminderServiceURL string `env:"REMINDER_SERVICE_URL" env-default:"http://localhost:8083"`
}

// Load reads .env when present, then the process environment. Which
// fields are actually required depends on the binary; each main checks
// its own.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
