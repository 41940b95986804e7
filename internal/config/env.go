// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via caarlos0/env.
// Field mapping follows the `env` and `envPrefix` tags on
// [StructuredConfig] and its nested sections (server, database, S3, app).
//
// A failed env.Parse (missing required variable, unconvertible value) is
// returned wrapped.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
