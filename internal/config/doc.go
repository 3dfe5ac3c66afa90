// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo in priority order (earlier sources win for
// non-zero fields), defaults are applied last, and the final configuration is
// validated before use.
package config
