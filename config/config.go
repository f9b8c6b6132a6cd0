package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Database Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Push Provider Configuration
	Firebase FirebaseConfig
	Dispatch DispatchConfig

	// Authentication & Security Configuration
	JWT     JWTConfig
	Webhook WebhookConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

type EnvironmentConfig struct {
	Name string `env:"APP_ENV" envDefault:"production"`
}

type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"GIN_MODE" envDefault:"release"`
}

type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"ttiring"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"50"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"POSTGRES_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// RedisConfig only supports standalone mode.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"5"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"20"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE" envDefault:"firebase-service-account.json"`
}

// DispatchConfig tunes the keyword fan-out.
type DispatchConfig struct {
	BatchSize    int           `env:"DISPATCH_BATCH_SIZE" envDefault:"500"`
	ChunkDelay   time.Duration `env:"DISPATCH_CHUNK_DELAY" envDefault:"100ms"`
	ChunkTimeout time.Duration `env:"DISPATCH_CHUNK_TIMEOUT" envDefault:"30s"`
}

type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

type WebhookConfig struct {
	APIKey      string        `env:"WEBHOOK_API_KEY"`
	RatePerHour int           `env:"WEBHOOK_RATE_PER_HOUR" envDefault:"1000"`
	RateBurst   int           `env:"WEBHOOK_RATE_BURST" envDefault:"50"`
	DedupTTL    time.Duration `env:"WEBHOOK_DEDUP_TTL" envDefault:"10m"`
}

type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase reads the configuration for tools that only need the database, without checking secrets.
func LoadDatabase() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if len(c.JWT.SecretKey) < 32 {
		return errors.New("JWT_SECRET_KEY must be at least 32 characters")
	}
	if c.Webhook.APIKey == "" {
		return errors.New("WEBHOOK_API_KEY is required")
	}
	if c.Firebase.ProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.Dispatch.BatchSize <= 0 || c.Dispatch.BatchSize > 500 {
		return errors.New("DISPATCH_BATCH_SIZE must be between 1 and 500")
	}
	return nil
}
