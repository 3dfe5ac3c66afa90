// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Denisov

package config

import "errors"

var (
	errNoTokenSignKey       = errors.New("token sign key is required")
	errNoDatabaseDSN        = errors.New("database DSN is required")
	errInvalidTokenDuration = errors.New("token duration must be positive")
)
