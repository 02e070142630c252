// Package config loads, normalizes, and validates reelcraft's TOML
// configuration.
//
// Load applies repository defaults, decodes an optional config file, expands
// home-relative paths, and merges secrets from the environment exactly once.
// Components receive resolved values and never read the environment or derive
// defaults themselves.
package config
