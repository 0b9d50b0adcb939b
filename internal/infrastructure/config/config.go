package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full process configuration, read once at startup.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Media     MediaConfig
	RateLimit RateLimitConfig
}

// AuthConfig holds the token and password policy settings. JWTSecret has no
// default on purpose: an empty secret must abort startup, never be papered
// over at issue time.
type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL,    default=1h"`
	RefreshTokenTTL   time.Duration `env:"REFRESH_TOKEN_TTL,   default=720h"`
	PasswordMinLength int           `env:"PASSWORD_MIN_LENGTH, default=3"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=content_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MediaConfig points at the S3-compatible media host images are uploaded to.
// PublicBaseURL is the CDN/bucket prefix returned to clients.
type MediaConfig struct {
	Bucket        string `env:"MEDIA_BUCKET,          default=content-api-media"`
	Region        string `env:"MEDIA_REGION,          default=us-east-1"`
	Endpoint      string `env:"MEDIA_ENDPOINT"`
	AccessKey     string `env:"MEDIA_ACCESS_KEY"`
	SecretKey     string `env:"MEDIA_SECRET_KEY"`
	PublicBaseURL string `env:"MEDIA_PUBLIC_BASE_URL"`
}

// RateLimitConfig bounds register/login attempts per client IP.
type RateLimitConfig struct {
	Limit  int           `env:"AUTH_RATE_LIMIT,  default=10"`
	Window time.Duration `env:"AUTH_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return &cfg, nil
}

// IsProduction reports whether the deployment environment is production,
// which hardens refresh-cookie attributes (Secure, SameSite=None).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
