// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Denisov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return errNoTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}
	if cfg.App.TokenDuration <= 0 {
		return errInvalidTokenDuration
	}

	return nil
}
