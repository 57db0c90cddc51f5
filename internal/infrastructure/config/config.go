package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Auth     AuthConfig
	CORS     CORSConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Storage  StorageConfig
	Audit    AuditConfig
	Admin    AdminConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	CookieName string        `env:"COOKIE_NAME, default=hustlehub_access_token"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS, default=http://localhost:4200"`
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER,    default=sqlite"`
	URL    string `env:"DATABASE_URL, default=hustlehub.db"`
}

// RedisConfig is optional; an empty Addr disables server-side logout.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// MongoConfig is optional; an empty URI sends audit events to the log.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=hustlehub"`
}

type StorageConfig struct {
	Backend        string `env:"STORAGE_BACKEND,  default=local"`
	UploadDir      string `env:"UPLOAD_DIR,       default=uploads/resumes"`
	MaxResumeBytes int64  `env:"MAX_RESUME_BYTES, default=5242880"`

	S3 S3Config
}

type S3Config struct {
	Bucket          string `env:"S3_BUCKET"`
	Region          string `env:"S3_REGION, default=us-east-1"`
	Endpoint        string `env:"S3_ENDPOINT"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// AdminConfig seeds the first admin account on an empty user table. Leaving
// ADMIN_PASSWORD unset skips seeding.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@hustlehub.local"`
	Password string `env:"ADMIN_PASSWORD"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DevJWTSecret signs tokens outside production when JWT_SECRET is unset.
const DevJWTSecret = "hustlehub-dev-secret"

// Load reads configuration from environment variables using go-envconfig.
// It panics on a malformed or invalid environment.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("config: JWT_SECRET is required in production")
		}
		c.Auth.JWTSecret = DevJWTSecret
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Storage.Backend {
	case "local":
	case "s3":
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET is required for the s3 storage backend")
		}
	default:
		return fmt.Errorf("config: unsupported STORAGE_BACKEND %q", c.Storage.Backend)
	}
	return nil
}
