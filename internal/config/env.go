package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "ROLLSIM_"

// ApplyEnv overrides cfg with any ROLLSIM_* variables that are set, such as
// ROLLSIM_MODE or ROLLSIM_RENDER_SIZE. Unset variables leave cfg untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
