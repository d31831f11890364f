// Package config loads and validates the TOML configuration shared by the
// worker daemon and the CLI. All tunables are explicit values passed into
// components at construction; there is no ambient global state.
package config
