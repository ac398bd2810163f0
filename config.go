package client

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the credentials and environment of a Client. It is passed to
// New explicitly; the client itself never reads the process environment.
type Config struct {
	Username string `envconfig:"USERNAME" required:"true"`
	APIKey   string `envconfig:"API_KEY" required:"true"`
	Sandbox  bool   `envconfig:"SANDBOX" default:"false"`
}

// LoadConfig reads UNBABEL_USERNAME, UNBABEL_API_KEY and UNBABEL_SANDBOX.
// Intended for binaries and tests; library code should build Config directly.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("UNBABEL", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, nil
}
