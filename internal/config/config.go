package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration for the backend.
//
// Every value can be set through the environment with the BAZOOKA_ prefix.
// A .env file in the working directory is loaded first if it exists.
type Config struct {
	// GinMode is the mode the gin engine runs in. Defaults to "release"
	// for security reasons.
	GinMode string `envconfig:"BAZOOKA_GIN_MODE" default:"release"`

	// Port the HTTP server listens on.
	Port string `envconfig:"BAZOOKA_PORT" default:"8080"`

	// DBPath is the path of the SQLite database file.
	DBPath string `envconfig:"BAZOOKA_DB_PATH" default:"data/bazooka.db"`

	// LogLevel is the minimum zerolog level that is emitted.
	LogLevel string `envconfig:"BAZOOKA_LOG_LEVEL" default:"info"`

	// LogFormat switches between "human" readable and JSON log output.
	// When unset, output is human readable in debug mode and JSON
	// otherwise.
	LogFormat string `envconfig:"BAZOOKA_LOG_FORMAT"`

	// CORSAllowOrigins is a list of glob patterns for allowed origins,
	// e.g. "https://*.example.com". CORS headers are only set when at
	// least one pattern is configured.
	CORSAllowOrigins []string `envconfig:"BAZOOKA_CORS_ALLOW_ORIGINS"`

	// EnablePprof mounts the pprof handlers on /debug/pprof.
	EnablePprof bool `envconfig:"BAZOOKA_ENABLE_PPROF" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	// A missing .env file is not an error, the environment is authoritative
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
