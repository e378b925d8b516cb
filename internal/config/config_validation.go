// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedLink Authors

package config

import "time"

// Safe defaults applied to any field left unset by every configuration
// source. The sign key default exists for local development only and must be
// overridden in a production deployment.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "medlink-api"
	DefaultTokenAudience  = "medlink-app"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultTokenSignKey   = "YourSuperSecretKeyThatShouldBeAtLeast32CharactersLongForSecurity"
	DefaultAdminEmail     = "admin@medlink.com"
	DefaultAdminPassword  = "Admin@123"
)

// validate checks the final merged [StructuredConfig] and fills every unset
// field with its safe default, so the rest of the application never has to
// special-case empty configuration values.
//
// Returns nil; kept as an error-returning method so future invariants
// (e.g. rejecting the default sign key outside development) slot in without
// changing call sites.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenAudience == "" {
		cfg.Auth.TokenAudience = DefaultTokenAudience
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = DefaultTokenSignKey
	}

	if cfg.Admin.Email == "" {
		cfg.Admin.Email = DefaultAdminEmail
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = DefaultAdminPassword
	}

	return nil
}
