package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gtank/blake2/v2/internal/config"
)

var configPath string

// RootCmd is the main command for the blake2bsum binary.
var RootCmd = &cobra.Command{
	Use:   "blake2bsum",
	Short: "blake2bsum computes BLAKE2b digests",
	Long:  "blake2bsum computes BLAKE2b digests of files or standard input.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	RootCmd.AddCommand(SumCmd)
}

// loadConfiguration reads the --config file if one was given, falling
// back to an empty Configuration (package defaults) otherwise, mirroring
// distribution-distribution's resolveConfiguration/configuration.Parse flow.
func loadConfiguration() (*config.Configuration, error) {
	if configPath == "" {
		return &config.Configuration{OutputLength: config.DefaultOutputLength}, nil
	}

	fp, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("opening config %s: %w", configPath, err)
	}
	defer fp.Close()

	cfg, err := config.Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
	}
	return cfg, nil
}

// configureLogging applies a Configuration's Log section to the default
// logrus logger, the way distribution-distribution's configureLogging
// applies Config.Log to the package logrus logger.
func configureLogging(cfg *config.Configuration) error {
	if cfg.Log.Level != "" {
		level, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("unsupported log level %q: %w", cfg.Log.Level, err)
		}
		logrus.SetLevel(level)
	}

	switch cfg.Log.Formatter {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("unsupported logging formatter: %q", cfg.Log.Formatter)
	}

	return nil
}
