// Package config parses the YAML configuration file accepted by the
// cmd/blake2bsum CLI, in the shape distribution-distribution's
// configuration package uses: a plain struct with yaml tags and a single
// Parse(io.Reader) entry point, without that package's versioned-schema
// machinery (this CLI has exactly one configuration shape).
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Log configures the CLI's logrus output.
type Log struct {
	// Level is a logrus level name: "debug", "info", "warn", "error".
	Level string `yaml:"level,omitempty"`
	// Formatter selects the logrus formatter: "text" or "json".
	Formatter string `yaml:"formatter,omitempty"`
}

// Configuration is the top-level shape of a blake2bsum config file,
// intended to be provided by a YAML file and optionally overridden by CLI
// flags.
type Configuration struct {
	// OutputLength is the default digest length in bytes, in [1, 64].
	OutputLength int `yaml:"outlen,omitempty"`

	// Key is a hex-encoded MAC key applied to every hash unless
	// overridden by --key or --key-file.
	Key string `yaml:"key,omitempty"`

	// Log supports setting various parameters related to the logging
	// subsystem.
	Log Log `yaml:"log,omitempty"`
}

// DefaultOutputLength is used when neither the config file nor --outlen
// specify an output length.
const DefaultOutputLength = 64

// Parse unmarshals a Configuration from r. An empty or absent document is
// not an error; a Configuration with only OutputLength set to
// DefaultOutputLength is returned.
func Parse(r io.Reader) (*Configuration, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: reading configuration: %w", err)
	}

	config := &Configuration{OutputLength: DefaultOutputLength}
	if len(in) == 0 {
		return config, nil
	}

	if err := yaml.Unmarshal(in, config); err != nil {
		return nil, fmt.Errorf("config: parsing configuration: %w", err)
	}

	return config, nil
}
