package config

import (
	"fmt"
	"os"
)

// ServerConfig is the configuration view consumed by the depth stub server.
type ServerConfig struct {
	App    App
	Server Server
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	return serverConfigFromArgs(os.Args[1:])
}

func serverConfigFromArgs(args []string) (*ServerConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{App: cfg.App, Server: cfg.Server}
	if err = serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}
