// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-doc-chat/models"
)

// StructuredConfig is the top-level configuration container for the client.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: session scope and rendering.
	App App `envPrefix:"APP_"`

	// Adapter holds the server address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration of the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds settings of the stub document server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour settings.
type App struct {
	// SessionScope names the slot the session token is persisted under.
	// Two clients with different scopes keep independent sessions, the same
	// way two browser tabs do.
	// Env: APP_SESSION_SCOPE
	SessionScope string `env:"SESSION_SCOPE"`

	// RenderStyle is the glamour style used for markdown rendering
	// ("dark", "light", "notty", "ascii", ...).
	// Env: APP_RENDER_STYLE
	RenderStyle string `env:"RENDER_STYLE"`

	// WordWrap is the column at which rendered markdown is wrapped.
	// Env: APP_WORD_WRAP
	WordWrap int `env:"WORD_WRAP"`
}

// Adapter holds configuration of the HTTP transport to the document server.
type Adapter struct {
	// HTTPAddress is the server base address, either "host:port" or a full
	// URL (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero leaves the transport
	// defaults in place: uploads of large batches can take minutes.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, a file path or ":memory:".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logger settings.
type Log struct {
	// FilePath is where the client writes its JSON logs. The terminal is
	// owned by the UI, so logs never go to stdout.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Server holds settings of the stub document server used for local runs and
// end-to-end tests of the client.
type Server struct {
	// HTTPAddress is the listen address, e.g. ":8000".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SessionTTL is how long an indexed session survives without use.
	// Env: SERVER_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SweepInterval is the period of the expired-session sweep.
	// Env: SERVER_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// MaxUploadSize caps the multipart body of one upload, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress = "http://localhost:8000"
	DefaultRenderStyle = "dark"
	DefaultWordWrap    = 80
	DefaultLogLevel    = "info"

	DefaultServerAddress = ":8000"
	DefaultSessionTTL    = time.Hour
	DefaultSweepInterval = time.Minute
	DefaultMaxUploadSize = 32 << 20
	defaultDBFile      = "doc-chat.db"
	defaultLogFile     = "doc-chat.log"
)

// defaultConfig returns the lowest priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionScope: models.DefaultSessionScope,
			RenderStyle:  DefaultRenderStyle,
			WordWrap:     DefaultWordWrap,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
		Storage: Storage{
			DB: DB{DSN: defaultStatePath(defaultDBFile)},
		},
		Log: Log{
			FilePath: defaultStatePath(defaultLogFile),
			Level:    DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:   DefaultServerAddress,
			SessionTTL:    DefaultSessionTTL,
			SweepInterval: DefaultSweepInterval,
			MaxUploadSize: DefaultMaxUploadSize,
		},
	}
}

// defaultStatePath places client state files in the user config directory,
// falling back to the working directory.
func defaultStatePath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "doc-chat", name)
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
