package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Market    MarketConfig    `yaml:"market"`
	Reserve   ReserveConfig   `yaml:"reserve"`
	Events    EventsConfig    `yaml:"events"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Dev       DevConfig       `yaml:"dev"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	// StatementTimeout bounds every statement server-side; zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
}

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// StorageConfig selects the record store backend.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

// AuthConfig holds JWT settings. Accounts are identified by the token subject.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"bullion-registry"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Oracle sources.
const (
	OracleSourceHermes = "hermes"
	OracleSourceStatic = "static"
)

// OracleConfig selects the price feed source and the two feeds consumed by
// valuation. Static prices use the "value:conf:expo" notation.
type OracleConfig struct {
	Source          string        `yaml:"source"           env:"ORACLE_SOURCE"           env-default:"hermes"`
	HermesURL       string        `yaml:"hermes_url"       env:"ORACLE_HERMES_URL"       env-default:"https://hermes.pyth.network"`
	Timeout         time.Duration `yaml:"timeout"          env:"ORACLE_TIMEOUT"          env-default:"5s"`
	MaxAge          time.Duration `yaml:"max_age"          env:"ORACLE_MAX_AGE"          env-default:"72h"`
	CommodityFeedID string        `yaml:"commodity_feed_id" env:"ORACLE_COMMODITY_FEED_ID" env-default:"765d2ba906dbc32ca17cc11f5310a89e9ee1f6420508c63861f2f8ba4ee34bb2"`
	CurrencyFeedID  string        `yaml:"currency_feed_id"  env:"ORACLE_CURRENCY_FEED_ID"  env-default:"ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d"`
	CommodityPrice  string        `yaml:"commodity_price"  env:"ORACLE_COMMODITY_PRICE"`
	CurrencyPrice   string        `yaml:"currency_price"   env:"ORACLE_CURRENCY_PRICE"`

	// StaticCommodity is parsed from CommodityPrice during validation.
	StaticCommodity StaticPrice `yaml:"-" env:"-"`
	// StaticCurrency is parsed from CurrencyPrice during validation.
	StaticCurrency StaticPrice `yaml:"-" env:"-"`
}

// StaticPrice is a configured feed observation: Value × 10^Expo ± Conf.
type StaticPrice struct {
	Value int64
	Conf  uint64
	Expo  int32
}

// Market price modes.
const (
	PriceModeStatic = "static"
	PriceModeOracle = "oracle"
)

// MarketConfig holds settlement settings.
type MarketConfig struct {
	PriceMode            string `yaml:"price_mode"             env:"MARKET_PRICE_MODE"             env-default:"static"`
	ListingPriceDecimals uint8  `yaml:"listing_price_decimals" env:"MARKET_LISTING_PRICE_DECIMALS" env-default:"6"`
}

// ReserveConfig prices record storage.
type ReserveConfig struct {
	OverheadBytes uint64 `yaml:"overhead_bytes" env:"RESERVE_OVERHEAD_BYTES" env-default:"128"`
	PerByte       uint64 `yaml:"per_byte"       env:"RESERVE_PER_BYTE"       env-default:"6960"`
}

// EventsConfig holds event log settings.
type EventsConfig struct {
	RetentionDays int `yaml:"retention_days" env:"EVENTS_RETENTION_DAYS" env-default:"365"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// DevConfig holds development-only switches.
type DevConfig struct {
	AirdropEnabled bool `yaml:"airdrop_enabled" env:"DEV_AIRDROP_ENABLED" env-default:"false"`
}
