package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-required:"true"`
	HTTP    HTTPConfig
	Sweeper SweeperConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type SweeperConfig struct {
	// Interval is how often completed tasks are swept.
	Interval time.Duration `env:"SWEEPER_INTERVAL" env-default:"1h"`
	// Retention is how long a completed task survives after its
	// last update before a sweep removes it.
	Retention time.Duration `env:"SWEEPER_RETENTION" env-default:"24h"`
}
