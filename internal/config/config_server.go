package config

import (
	"fmt"
)

// ServerConfig is the subset of [StructuredConfig] the HTTP server works with.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

// GetServerConfig builds the server configuration from the same sources as
// [GetStructuredConfig].
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}, nil
}
