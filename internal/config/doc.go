// Package config loads and watches entryline host configuration.
//
// Configuration is a plain struct with per-kind input limits, timing
// thresholds, and scroll tuning. It can be populated from TOML or
// YAML files; a missing file yields the built-in defaults. The
// Watcher reloads a file on change so hosts can apply tuning live.
package config
