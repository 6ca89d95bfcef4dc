// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names are built from the
// `envPrefix` and `env` tags, e.g. App.AdminLogin reads APP_ADMIN_LOGIN and
// Server.AllowedOrigins reads the comma separated SERVER_ALLOWED_ORIGINS.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
