package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file, the final
// fallback used by Load when no file is found on disk.
func DefaultYAML() []byte {
	return defaultYAML
}
