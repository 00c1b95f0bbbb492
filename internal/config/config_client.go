package config

import (
	"fmt"
)

// ClientConfig is the subset of [StructuredConfig] the CLI works with.
type ClientConfig struct {
	// App carries envelope defaults, the integrity key and the log level.
	App App
	// Storage is used when the CLI works against local databases.
	Storage Storage
	// Adapter is used when the CLI talks to a remote server.
	Adapter Adapter
}

// Remote reports whether the CLI should go through the HTTP adapter.
func (c *ClientConfig) Remote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds the CLI configuration from the same sources as
// [GetStructuredConfig] and returns the arguments left after the global
// flags, starting with the subcommand.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}, rest, nil
}
