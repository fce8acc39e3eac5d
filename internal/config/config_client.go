package config

import (
	"fmt"
	"os"
)

// ClientConfig is the configuration view consumed by the capture client.
type ClientConfig struct {
	// App contains logging settings.
	App App
	// Adapter contains the upload endpoint and timeout.
	Adapter Adapter
	// Camera selects the capture source.
	Camera Camera
	// Storage contains the output directory for saved results.
	Storage Storage
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	return clientConfigFromArgs(os.Args[1:])
}

func clientConfigFromArgs(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Camera:  cfg.Camera,
		Storage: cfg.Storage,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
