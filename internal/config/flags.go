package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args and returns the
// arguments left after the last flag (a CLI subcommand, for instance).
//
// Flags:
//
//	-a              server address in format [host]:[port]
//	-c / -config    JSON config file path
//	-d              archive database DSN
//	-driver         archive database driver (sqlite3 | pgx)
//	-source-dsn     source database DSN
//	-source-driver  source database driver (sqlite3 | pgx)
//	-i              default PBKDF2 iteration count
//	-salt-length    generated salt length in bytes
//	-k              HMAC key for the HashSHA256 header
//	-t              server request timeout (e.g. "30s")
//	-remote         base URL of a remote server for the CLI
//	-remote-timeout CLI request timeout
//	-log-level      CLI log level
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		requestTimeout time.Duration
		remoteTimeout  time.Duration
	)

	fs := flag.NewFlagSet("sealed-table", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var setErr error
	fs.Func("a", "Net address host:port", func(v string) error {
		setErr = serverAddress.Set(v)
		return setErr
	})
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Archive database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Archive database driver (sqlite3, pgx)")
	fs.StringVar(&cfg.Storage.Source.DSN, "source-dsn", "", "Source database DSN")
	fs.StringVar(&cfg.Storage.Source.Driver, "source-driver", "", "Source database driver (sqlite3, pgx)")
	fs.IntVar(&cfg.App.Iterations, "i", 0, "Default PBKDF2 iteration count")
	fs.IntVar(&cfg.App.SaltLength, "salt-length", 0, "Generated salt length in bytes")
	fs.StringVar(&cfg.App.HashKey, "k", "", "Request integrity hash key")
	fs.DurationVar(&requestTimeout, "t", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "Remote server base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "CLI log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		// flag formats Set errors with %v, so the sentinel is re-attached here.
		if setErr != nil {
			return nil, nil, fmt.Errorf("error parsing flags: %w", setErr)
		}
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Adapter.RequestTimeout = remoteTimeout

	return &cfg, fs.Args(), nil
}

// String returns "host:port", or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host must be an IP address or "localhost";
// an empty host means all interfaces.
func (a *NetAddress) Set(s string) error {
	host, portText, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(portText)
	if err != nil {
		return fmt.Errorf("%w: port %q: %w", ErrInvalidNetAddress, portText, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidNetAddress, port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: incorrect IP address %q", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
