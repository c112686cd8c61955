package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the single configuration object loaded at startup and injected
// into the components that need it. No module-level secret singletons.
type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
	Upload UploadConfig
	Seed   SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=homecare"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT,  default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"EMAIL_FROM, default=no-reply@havenbridge.com"`
}

type UploadConfig struct {
	// Dir is the fixed relative directory resumes are stored under.
	Dir string `env:"UPLOAD_DIR, default=uploads/resumes"`
}

// SeedConfig provisions the initial administrator when the credential store
// is empty. An empty password skips seeding.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL, default=admin@havenbridge.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	AdminName     string `env:"SEED_ADMIN_NAME,  default=System Administrator"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
