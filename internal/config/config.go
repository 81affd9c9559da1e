package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Schedule     ScheduleConfig     `yaml:"schedule"`
	Rules        RulesConfig        `yaml:"rules"`
	Cache        CacheConfig        `yaml:"cache"`
	Audit        AuditConfig        `yaml:"audit"`
	Notification NotificationConfig `yaml:"notification"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-User-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

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
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ScheduleConfig controls the periodic summary refresh.
type ScheduleConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"SCHEDULE_ENABLED"          env-default:"true"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"SCHEDULE_REFRESH_INTERVAL" env-default:"24h"`
	RefreshTimeout  time.Duration `yaml:"refresh_timeout"  env:"SCHEDULE_REFRESH_TIMEOUT"  env-default:"5m"`
	RunOnStart      bool          `yaml:"run_on_start"     env:"SCHEDULE_RUN_ON_START"     env-default:"true"`
	BatchSize       int           `yaml:"batch_size"       env:"SCHEDULE_BATCH_SIZE"       env-default:"500"`
}

// RulesConfig holds the recommendation and due-date parameters.
type RulesConfig struct {
	StrictFrequency      bool          `yaml:"strict_frequency"      env:"RULES_STRICT_FREQUENCY"      env-default:"false"`
	MaintenanceLookahead time.Duration `yaml:"maintenance_lookahead" env:"RULES_MAINTENANCE_LOOKAHEAD" env-default:"168h"`
	WarrantyLookahead    time.Duration `yaml:"warranty_lookahead"    env:"RULES_WARRANTY_LOOKAHEAD"    env-default:"720h"`
	RecentWindow         time.Duration `yaml:"recent_window"         env:"RULES_RECENT_WINDOW"         env-default:"336h"`
	RecentMax            int           `yaml:"recent_max"            env:"RULES_RECENT_MAX"            env-default:"10"`
}

// CacheConfig bounds the summary cache. Zero values disable the bound.
type CacheConfig struct {
	MaxEntries int           `yaml:"max_entries" env:"CACHE_MAX_ENTRIES" env-default:"10000"`
	MaxAge     time.Duration `yaml:"max_age"     env:"CACHE_MAX_AGE"     env-default:"0s"`
}

// Audit failure policies.
const (
	AuditPolicyBestEffort = "best_effort"
	AuditPolicyStrict     = "strict"
)

// AuditConfig holds audit log settings.
type AuditConfig struct {
	FailurePolicy  string        `yaml:"failure_policy"   env:"AUDIT_FAILURE_POLICY"   env-default:"best_effort"`
	RetryAttempts  uint64        `yaml:"retry_attempts"   env:"AUDIT_RETRY_ATTEMPTS"   env-default:"5"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"AUDIT_RETRY_BASE_DELAY" env-default:"200ms"`
	QueueSize      int           `yaml:"queue_size"       env:"AUDIT_QUEUE_SIZE"       env-default:"1024"`
	RetentionDays  int           `yaml:"retention_days"   env:"AUDIT_RETENTION_DAYS"   env-default:"365"`
}

// IsStrict reports whether audit write failures abort the mutation.
func (c AuditConfig) IsStrict() bool {
	return strings.EqualFold(c.FailurePolicy, AuditPolicyStrict)
}

// Retention converts RetentionDays to a duration.
func (c AuditConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	RetentionDays int `yaml:"retention_days" env:"NOTIFICATION_RETENTION_DAYS" env-default:"90"`
}

// Retention converts RetentionDays to a duration.
func (c NotificationConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
