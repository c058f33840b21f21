package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Datasets  DatasetsConfig  `yaml:"datasets"`
	Lookup    LookupConfig    `yaml:"lookup"`
	Cache     CacheConfig     `yaml:"cache"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimitPerMinute is the per-IP request budget.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// AnthropicConfig holds settings for the primary AI word source.
type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"    env:"ANTHROPIC_API_KEY" env-required:"true"`
	Model     string `yaml:"model"      env:"ANTHROPIC_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64  `yaml:"max_tokens" env:"ANTHROPIC_MAX_TOKENS" env-default:"4096"`
}

// DatasetsConfig holds file paths for the supplementary word sources.
// Empty paths disable the corresponding source.
type DatasetsConfig struct {
	WordNetPath   string `yaml:"wordnet_path"   env:"DATASET_WORDNET_PATH"`
	CMUDictPath   string `yaml:"cmudict_path"   env:"DATASET_CMUDICT_PATH"`
	CEFRPath      string `yaml:"cefr_path"      env:"DATASET_CEFR_PATH"`
	FrequencyPath string `yaml:"frequency_path" env:"DATASET_FREQUENCY_PATH"`
}

// LookupConfig holds timeouts for the lookup/enrichment pipeline.
type LookupConfig struct {
	AITimeout        time.Duration `yaml:"ai_timeout"         env:"LOOKUP_AI_TIMEOUT"         env-default:"30s"`
	SourceTimeout    time.Duration `yaml:"source_timeout"     env:"LOOKUP_SOURCE_TIMEOUT"     env-default:"2s"`
	LockTTL          time.Duration `yaml:"lock_ttl"           env:"LOOKUP_LOCK_TTL"           env-default:"45s"`
	LockWaitTimeout  time.Duration `yaml:"lock_wait_timeout"  env:"LOOKUP_LOCK_WAIT_TIMEOUT"  env-default:"40s"`
	LockPollInterval time.Duration `yaml:"lock_poll_interval" env:"LOOKUP_LOCK_POLL_INTERVAL" env-default:"500ms"`
}

// CacheConfig holds the word cache TTL policy.
type CacheConfig struct {
	// CommonRankCutoff: words with frequency rank <= cutoff are cached
	// without expiry.
	CommonRankCutoff int           `yaml:"common_rank_cutoff" env:"CACHE_COMMON_RANK_CUTOFF" env-default:"5000"`
	RareTTL          time.Duration `yaml:"rare_ttl"           env:"CACHE_RARE_TTL"           env-default:"720h"`
	FailedTTL        time.Duration `yaml:"failed_ttl"         env:"CACHE_FAILED_TTL"         env-default:"1h"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
