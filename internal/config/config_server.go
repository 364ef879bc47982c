package config

import "fmt"

// ServerLog holds logger settings of the stub server. It logs to stderr.
type ServerLog struct {
	// Level is the minimal emitted level.
	Level string
}

// ServerConfig is the stub server view of [StructuredConfig].
type ServerConfig struct {
	// Server contains the listen address and session lifecycle settings.
	Server Server
	// Log contains logger settings.
	Log ServerLog
}

// GetServerConfig builds and validates the stub server config view from the
// merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: cfg.Server,
		Log:    ServerLog{Level: cfg.Log.Level},
	}

	return serverCfg, serverCfg.validate()
}
