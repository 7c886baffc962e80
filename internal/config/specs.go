package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// PendingTokenSecret signs the single-use pending action tokens carried
	// between workflow steps.
	PendingTokenSecret string        `envconfig:"pending_token_secret" required:"true"`
	PendingTokenTTL    time.Duration `envconfig:"pending_token_ttl" default:"10m"`

	CacheBackend string `envconfig:"cache_backend" default:"memory"`
	RedisAddr    string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisDB      int    `envconfig:"redis_db" default:"0"`

	DefaultTimezone string `envconfig:"default_timezone" default:"America/Chicago"`

	FreePlanSeatLimit int64 `envconfig:"free_plan_seat_limit" default:"10"`
}
