// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the server.
// It aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and CORS settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Events holds the optional Kafka settings for post events.
	Events Events `envPrefix:"EVENTS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, versioning and logging.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "15m", "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string exposed via the /version endpoint.
	// Falls back to the linker-injected build version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://" or "postgresql://" URLs open
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigin is the single origin permitted for cross-origin calls.
	// Env: SERVER_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`
}

// Events holds Kafka producer settings. With no brokers configured post
// events are not published at all.
type Events struct {
	// Brokers is a comma-separated list of Kafka bootstrap addresses.
	// Env: EVENTS_BROKERS
	Brokers []string `env:"BROKERS" envSeparator:","`

	// Topic receives post.created and post.deleted events.
	// Env: EVENTS_TOPIC
	Topic string `env:"TOPIC"`

	// Timeout bounds a single produce request.
	// Env: EVENTS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// defaultConfig holds the values used for every field left empty after all
// sources have been merged.
var defaultConfig = StructuredConfig{
	App: App{
		TokenIssuer:   "go-microblog",
		TokenDuration: 15 * time.Minute,
		LogLevel:      "debug",
	},
	Storage: Storage{
		DB: DB{DSN: "app.sqlite"},
	},
	Server: Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 30 * time.Second,
		AllowedOrigin:  "http://localhost:3000",
	},
	Events: Events{
		Topic:   "post-events",
		Timeout: 5 * time.Second,
	},
}

// GetStructuredConfig loads the configuration from the process environment
// and command-line arguments. See [LoadStructuredConfig].
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig loads, merges, defaults and validates the server
// configuration in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withEnv().
		withFlags().
		withJSON().
		build()
}
