package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the man3 commands.
const EnvPrefix = "MAN3_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvName returns the prefixed variable name for key, e.g. "OTEL_ENDPOINT"
// becomes "MAN3_OTEL_ENDPOINT".
func EnvName(key string) string {
	key = strings.ToUpper(strings.TrimSpace(key))
	if strings.HasPrefix(key, EnvPrefix) {
		return key
	}
	return EnvPrefix + key
}
