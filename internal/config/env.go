// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Comma separated CORS origins are trimmed, so "a, b" and "a,b" are the
// same list. Empty entries are dropped.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.CORSOrigins = trimOrigins(cfg.Server.CORSOrigins)

	return nil
}

func trimOrigins(origins []string) []string {
	if len(origins) == 0 {
		return origins
	}

	trimmed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			trimmed = append(trimmed, origin)
		}
	}
	return trimmed
}
