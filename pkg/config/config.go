package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

		// Honor X-Forwarded-For / X-Real-IP. Enable only behind a proxy that overwrites them.
		TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" env-default:"false"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	HikerAPI struct {
		Key      string        `env:"HIKERAPI_KEY"`
		BaseURL  string        `env:"HIKERAPI_BASE_URL" env-default:"https://api.hikerapi.com"`
		Timeout  time.Duration `env:"HIKERAPI_TIMEOUT" env-default:"15s"`
		CacheTTL time.Duration `env:"HIKERAPI_CACHE_TTL" env-default:"5m"`
	}
	Curator struct {
		MockCount   int `env:"CURATOR_MOCK_COUNT" env-default:"3"`
		Concurrency int `env:"CURATOR_CONCURRENCY" env-default:"4"`
		RateLimit   int `env:"CURATE_RATE_LIMIT" env-default:"10"`
		RateBurst   int `env:"CURATE_RATE_BURST" env-default:"3"`
	}
	Media struct {
		FetchTimeout time.Duration `env:"MEDIA_FETCH_TIMEOUT" env-default:"30s"`
		MaxBytes     int64         `env:"MEDIA_MAX_BYTES" env-default:"52428800"`
	}
	Storage struct {
		Endpoint  string `env:"STORAGE_ENDPOINT"`
		AccessKey string `env:"STORAGE_ACCESS_KEY"`
		SecretKey string `env:"STORAGE_SECRET_KEY"`
		Region    string `env:"STORAGE_REGION"`
		Bucket    string `env:"STORAGE_BUCKET" env-default:"repost-media"`
		Prefix    string `env:"STORAGE_PREFIX" env-default:"public"`
		UseSSL    bool   `env:"STORAGE_USE_SSL" env-default:"true"`
	}
	Webhook struct {
		Secret string `env:"WEBHOOK_SECRET"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	View struct {
		CacheTTL time.Duration `env:"VIEW_CACHE_TTL" env-default:"30s"`
	}
}

// GetDSN returns the postgres connection string used by pgx and database/sql.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		// .env is optional; real environment variables always win.
		_ = godotenv.Load()

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
