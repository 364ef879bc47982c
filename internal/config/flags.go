package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// sessionScopeUsage is the -scope help. The scope is not derived from the
// terminal, so every client started with the same scope and database resumes
// the same server session.
const sessionScopeUsage = `Session scope; clients sharing a scope and database share one server session (default "default"), pass a distinct scope per terminal to keep chats apart`

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address, host:port or URL
//	-request-timeout request timeout (e.g., "30s", "5m"), 0 disables it
//	-d SQLite DSN of the local session database
//	-scope session scope, shared by every client using it
//	-style markdown render style
//	-wrap markdown word wrap column
//	-log-file log file path
//	-log-level log level
//	-listen stub server listen address
//	-session-ttl stub server session lifetime
//	-sweep-interval stub server expiry sweep period
//	-max-upload-size stub server upload limit in bytes
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("doc-chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  string
		requestTimeout time.Duration
		databaseDSN    string
		sessionScope   string
		renderStyle    string
		wordWrap       int
		logFile        string
		logLevel       string
		jsonConfigPath string

		listenAddress string
		sessionTTL    time.Duration
		sweepInterval time.Duration
		maxUploadSize int64
	)

	fs.StringVar(&serverAddress, "a", "", "Server address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 5m)")
	fs.StringVar(&databaseDSN, "d", "", "Local session database DSN")
	fs.StringVar(&sessionScope, "scope", "", sessionScopeUsage)
	fs.StringVar(&renderStyle, "style", "", "Markdown render style")
	fs.IntVar(&wordWrap, "wrap", 0, "Markdown word wrap column")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&listenAddress, "listen", "", "Stub server listen address")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Stub server session lifetime")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Stub server expiry sweep period")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Stub server upload limit in bytes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			var usage strings.Builder
			fs.SetOutput(&usage)
			fs.PrintDefaults()
			return nil, fmt.Errorf("error parsing flags: %w\n%s", err, usage.String())
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionScope: sessionScope,
			RenderStyle:  renderStyle,
			WordWrap:     wordWrap,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		Server: Server{
			HTTPAddress:   listenAddress,
			SessionTTL:    sessionTTL,
			SweepInterval: sweepInterval,
			MaxUploadSize: maxUploadSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
