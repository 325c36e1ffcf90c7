// Package config handles configuration management for lootifier.
//
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config at $XDG_CONFIG_HOME/lootifier/config.toml
//  3. lootifier.toml in the working directory, or the file given by --config
//  4. LOOTIFIER_* environment variables
//  5. command-line flags that were explicitly set
package config
