// Package config loads, normalizes, and validates sleeve's TOML
// configuration.
package config
