package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port string `envconfig:"PORT" default:"5000"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBDSN      string `envconfig:"DB_DSN"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"workforce"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"workforce"`
	DBName     string `envconfig:"DB_NAME" default:"workforce"`

	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"8h"`

	ClientOriginDev  string `envconfig:"CLIENT_ORIGIN_DEV" default:"http://localhost:3000"`
	ClientOriginProd string `envconfig:"CLIENT_ORIGIN_PROD" default:"https://workforcemanagement-frontend.onrender.com"`

	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	AuditWriteTimeout time.Duration `envconfig:"AUDIT_WRITE_TIMEOUT" default:"5s"`
	SeedOnStart       bool          `envconfig:"SEED_ON_START"`
}

// Load reads .env.<APP_ENV> when present and then the process environment.
// Variables already set in the environment take precedence over the file.
func Load() (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = EnvDevelopment
	}
	envFile := ".env." + env
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}

	// demo data is loaded on start outside production unless disabled
	if _, ok := os.LookupEnv("SEED_ON_START"); !ok {
		cfg.SeedOnStart = !cfg.IsProduction()
	}

	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ClientOrigin is the browser origin allowed by CORS for the current environment.
func (c *Config) ClientOrigin() string {
	if c.IsProduction() {
		return c.ClientOriginProd
	}
	return c.ClientOriginDev
}

// GinMode maps the application environment to a gin mode.
func (c *Config) GinMode() string {
	if c.IsProduction() {
		return "release"
	}
	return "debug"
}

// DSN returns DB_DSN or one assembled from the individual settings.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}

	switch c.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	case "sqlite":
		return c.DBName + ".db"
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	}
}
