// Package config defines gitver settings and loads them from an optional YAML
// file, environment variables and command-line overrides, in that order.
package config
