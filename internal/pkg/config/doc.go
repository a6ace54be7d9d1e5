// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by HADES_ prefixed
// environment variables and validated before use. Each settings struct
// exposes a Validate method so that components can check the part of the
// configuration they depend on.
package config
