package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is applied by envconfig when resolving variables.
const EnvPrefix = "GAMEVAULT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names used by tests and operational tooling.
const (
	EnvAppEnv        = "GAMEVAULT_APP_ENV"
	EnvPort          = "GAMEVAULT_APP_PORT"
	EnvDBDSN         = "GAMEVAULT_DB_DSN"
	EnvRedisURL      = "GAMEVAULT_REDIS_URL"
	EnvJWTSecret     = "GAMEVAULT_JWT_SECRET"
	EnvJWTIssuer     = "GAMEVAULT_JWT_ISSUER"
	EnvJWTExpMins    = "GAMEVAULT_JWT_EXPIRATION_MINUTES"
	EnvCatalogAPIKey = "GAMEVAULT_CATALOG_API_KEY"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Catalog       CatalogConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GAMEVAULT_APP_ENV" required:"true"`
	Port         string `envconfig:"GAMEVAULT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GAMEVAULT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GAMEVAULT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"GAMEVAULT_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"GAMEVAULT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GAMEVAULT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GAMEVAULT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GAMEVAULT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GAMEVAULT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GAMEVAULT_REDIS_ADDR"`
	Password     string        `envconfig:"GAMEVAULT_REDIS_PASSWORD"`
	DB           int           `envconfig:"GAMEVAULT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GAMEVAULT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GAMEVAULT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GAMEVAULT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GAMEVAULT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GAMEVAULT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"GAMEVAULT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GAMEVAULT_JWT_ISSUER" default:"gamevault"`
	ExpirationMinutes int    `envconfig:"GAMEVAULT_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// SessionTTL is the lifetime shared by the JWT and its redis session record.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GAMEVAULT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GAMEVAULT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GAMEVAULT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GAMEVAULT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GAMEVAULT_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"GAMEVAULT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"GAMEVAULT_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"GAMEVAULT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"GAMEVAULT_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"GAMEVAULT_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"GAMEVAULT_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

// CatalogConfig points at the external game metadata service. An empty API
// key is a valid state: search degrades to manual entry instead of failing.
type CatalogConfig struct {
	APIKey   string        `envconfig:"GAMEVAULT_CATALOG_API_KEY"`
	BaseURL  string        `envconfig:"GAMEVAULT_CATALOG_BASE_URL" default:"https://api.rawg.io/api"`
	Timeout  time.Duration `envconfig:"GAMEVAULT_CATALOG_TIMEOUT" default:"10s"`
	PageSize int           `envconfig:"GAMEVAULT_CATALOG_PAGE_SIZE" default:"20"`
}

// Configured reports whether upstream search is usable at all.
func (c CatalogConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GAMEVAULT_AUTO_MIGRATE" default:"false"`
}
