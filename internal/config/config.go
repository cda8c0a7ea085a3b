package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Every value has a default so the demo runs with
// no environment at all: an embedded sqlite file, a dev signing secret and
// the queue disabled.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBDriver     string // "sqlite" (embedded) or "mysql"
	DBPath       string // sqlite database file (":memory:" allowed)
	DBUser       string // mysql username
	DBPass       string // mysql password (optional)
	DBHost       string // mysql host address
	DBPort       string // mysql port number
	DBName       string // mysql database name
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	QueueEnabled bool   // publish booking events to RabbitMQ
}

// Load reads configuration values from environment variables, falling back
// to demo defaults for anything unset.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		DBDriver:     getenv("DB_DRIVER", "sqlite"),
		DBPath:       getenv("DB_PATH", "railswift.db"),
		DBUser:       getenv("DB_USER", "root"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBName:       getenv("DB_NAME", "railswift"),
		JWTSecret:    getenv("JWT_SECRET", "railswift-dev-secret"),
		AccessTTLMin: getint("ACCESS_TOKEN_TTL_MIN", 60),
		QueueEnabled: envBool("QUEUE_ENABLED", false),
	}
}

// getenv reads a string variable with a default.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getint reads an integer variable, keeping the default on parse failure.
func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}
