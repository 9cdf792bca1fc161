// Package config turns process inputs into typed run parameters.
//
// Build produces the search Config from positional arguments and an injected
// environment lookup. Load resolves ambient Settings (logging) from multiple
// sources with precedence: CLI flags > YAML config > Environment variables >
// Defaults.
package config
