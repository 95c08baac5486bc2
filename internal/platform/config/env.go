package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the commands.
const EnvPrefix = "ZENFLOW_"

// ParseEnv loads configuration from ZENFLOW_-prefixed environment variables.
//
// Struct tags name the variable without the prefix, so a field tagged
// `env:"ICONS_LOCALE"` reads ZENFLOW_ICONS_LOCALE.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
