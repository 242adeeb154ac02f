// Package config loads, normalizes, and validates snkfooter configuration.
//
// Configuration is optional: without a file every value falls back to the
// repository defaults, which reproduce the stock footer. A TOML file can
// adjust log output and the loop length assumed for documents that do not
// declare one.
//
// Always obtain settings through this package so the CLI receives canonical
// log formats and clear validation errors.
package config
