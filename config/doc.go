// Package config loads the application configuration from a YAML file with
// environment variable overrides. Secrets are normally supplied through the
// environment rather than the file.
package config
