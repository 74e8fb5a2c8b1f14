package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "HONEYSHOP"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	Storage       StorageConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HONEYSHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"HONEYSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"HONEYSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HONEYSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Storage backends supported for the snapshot store.
const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
	StorageBackendGorm  = "gorm"
)

type StorageConfig struct {
	Backend     string `envconfig:"HONEYSHOP_STORAGE_BACKEND" default:"file"`
	DataDir     string `envconfig:"HONEYSHOP_STORAGE_DATA_DIR" default:"./data"`
	PutAttempts int    `envconfig:"HONEYSHOP_STORAGE_PUT_ATTEMPTS" default:"3"`
}

func (s StorageConfig) validate() error {
	switch s.Backend {
	case StorageBackendFile, StorageBackendRedis, StorageBackendGorm:
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	if s.Backend == StorageBackendFile && s.DataDir == "" {
		return fmt.Errorf("storage data dir is required for the file backend")
	}
	if s.PutAttempts <= 0 {
		return fmt.Errorf("storage put attempts must be positive")
	}
	return nil
}

type DBConfig struct {
	Driver string `envconfig:"HONEYSHOP_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"HONEYSHOP_DB_DSN" default:"./data/honeyshop.db"`

	MaxOpenConns    int           `envconfig:"HONEYSHOP_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"HONEYSHOP_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"HONEYSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HONEYSHOP_REDIS_URL"`
	Address      string        `envconfig:"HONEYSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"HONEYSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"HONEYSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HONEYSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HONEYSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HONEYSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HONEYSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HONEYSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"HONEYSHOP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"HONEYSHOP_JWT_ISSUER" default:"honeyshop"`
	ExpirationMinutes      int    `envconfig:"HONEYSHOP_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"HONEYSHOP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HONEYSHOP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HONEYSHOP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HONEYSHOP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HONEYSHOP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HONEYSHOP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"HONEYSHOP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"HONEYSHOP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"HONEYSHOP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"HONEYSHOP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"HONEYSHOP_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"HONEYSHOP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}
