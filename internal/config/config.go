package config

import (
	"time"

	"github.com/google/uuid"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Ingest    IngestConfig    `yaml:"ingest"`
	AI        AIConfig        `yaml:"ai"`
	ImageEdit ImageEditConfig `yaml:"image_edit"`
	Storage   StorageConfig   `yaml:"storage"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// AutoMigrate reports whether embedded migrations run at startup. It is on
// unless skip_migrations is set; env-default cannot express a true default
// that YAML may turn off.
func (c DatabaseConfig) AutoMigrate() bool { return !c.SkipMigrations }

// AuthConfig holds session token verification settings. Tokens are issued
// by the external auth provider.
type AuthConfig struct {
	SessionJWTSecret string `yaml:"session_jwt_secret" env:"AUTH_SESSION_JWT_SECRET" env-required:"true"`
	SessionAudience  string `yaml:"session_audience"   env:"AUTH_SESSION_AUDIENCE"   env-default:"authenticated"`
	AdminRole        string `yaml:"admin_role"         env:"AUTH_ADMIN_ROLE"         env-default:"admin"`
}

// IngestConfig holds the machine-to-machine ingestion endpoint settings.
// Ingestion is disabled when APIKeyHash is empty.
type IngestConfig struct {
	APIKeyHash      string `yaml:"api_key_hash"   env:"INGEST_API_KEY_HASH"`
	ImportUserIDRaw string `yaml:"import_user_id" env:"INGEST_IMPORT_USER_ID"`

	// ImportUserID is parsed from ImportUserIDRaw during validation.
	ImportUserID uuid.UUID `yaml:"-" env:"-"`
}

// Enabled reports whether ingestion is configured.
func (c IngestConfig) Enabled() bool { return c.APIKeyHash != "" }

// AIConfig holds the language model settings and pricing.
type AIConfig struct {
	AnthropicAPIKey  string        `yaml:"anthropic_api_key"  env:"AI_ANTHROPIC_API_KEY"`
	BaseURL          string        `yaml:"base_url"           env:"AI_BASE_URL"`
	Model            string        `yaml:"model"              env:"AI_MODEL"              env-default:"claude-sonnet-4-5"`
	MaxTokens        int64         `yaml:"max_tokens"         env:"AI_MAX_TOKENS"         env-default:"2000"`
	InputUSDPerMTok  float64       `yaml:"input_usd_per_mtok"  env:"AI_INPUT_USD_PER_MTOK"  env-default:"5"`
	OutputUSDPerMTok float64       `yaml:"output_usd_per_mtok" env:"AI_OUTPUT_USD_PER_MTOK" env-default:"15"`
	CallTimeout      time.Duration `yaml:"call_timeout"       env:"AI_CALL_TIMEOUT"       env-default:"60s"`
	BatchGroupSize   int           `yaml:"batch_group_size"   env:"AI_BATCH_GROUP_SIZE"   env-default:"3"`
	BatchMaxItems    int           `yaml:"batch_max_items"    env:"AI_BATCH_MAX_ITEMS"    env-default:"50"`
}

// ImageEditConfig holds the background removal service settings.
type ImageEditConfig struct {
	RemoveBGAPIKey string        `yaml:"removebg_api_key" env:"IMAGE_EDIT_REMOVEBG_API_KEY"`
	Endpoint       string        `yaml:"endpoint"         env:"IMAGE_EDIT_ENDPOINT"         env-default:"https://api.remove.bg/v1.0/removebg"`
	FlatCostUSD    float64       `yaml:"flat_cost_usd"    env:"IMAGE_EDIT_FLAT_COST_USD"    env-default:"0.02"`
	Timeout        time.Duration `yaml:"timeout"          env:"IMAGE_EDIT_TIMEOUT"          env-default:"60s"`
}

// Storage drivers.
const (
	StorageSupabase = "supabase"
	StorageLocal    = "local"
)

// StorageConfig selects and configures the blob store.
type StorageConfig struct {
	Driver         string `yaml:"driver"           env:"STORAGE_DRIVER"           env-default:"local"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"20971520"`

	SupabaseURL        string `yaml:"supabase_url"         env:"STORAGE_SUPABASE_URL"`
	SupabaseServiceKey string `yaml:"supabase_service_key" env:"STORAGE_SUPABASE_SERVICE_KEY"`
	Bucket             string `yaml:"bucket"               env:"STORAGE_BUCKET"               env-default:"item-images"`

	LocalDir       string `yaml:"local_dir"        env:"STORAGE_LOCAL_DIR"        env-default:"./data/images"`
	LocalPublicURL string `yaml:"local_public_url" env:"STORAGE_LOCAL_PUBLIC_URL" env-default:"http://localhost:8080/files"`
}

// RateLimitConfig limits the AI-backed endpoints per caller.
type RateLimitConfig struct {
	AIRequestsPerMinute int `yaml:"ai_requests_per_minute" env:"RATE_LIMIT_AI_RPM" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig holds tracing and metrics settings. Tracing is off when
// OTLPEndpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint    string `yaml:"otlp_endpoint"    env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName     string `yaml:"service_name"     env:"OTEL_SERVICE_NAME"          env-default:"resale-backend"`
	MetricsDisabled bool   `yaml:"metrics_disabled" env:"TELEMETRY_METRICS_DISABLED"`
}

// MetricsEnabled reports whether /metrics and the HTTP metrics middleware are on.
func (c TelemetryConfig) MetricsEnabled() bool { return !c.MetricsDisabled }
