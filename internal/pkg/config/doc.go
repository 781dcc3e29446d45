// Package config provides functionality for loading and managing application configuration.
//
// Settings are assembled from defaults, an optional YAML file and environment
// variables, then validated before the service starts. Each settings struct
// owns its own Validate method so that subsystems can be checked in isolation.
package config
