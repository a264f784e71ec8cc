package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gtank/blake2/v2/blake2b"
	"github.com/gtank/blake2/v2/internal/config"
)

var (
	outlen  int
	keyHex  string
	keyFile string
)

// SumCmd is the cobra command that hashes files (or stdin) and prints
// their BLAKE2b digests.
var SumCmd = &cobra.Command{
	Use:   "sum [files...]",
	Short: "`sum` prints BLAKE2b digests of files or standard input",
	Long:  "`sum` prints BLAKE2b digests of files or standard input",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}
		if err := configureLogging(cfg); err != nil {
			return err
		}

		resolvedOutlen := outlen
		if !cmd.Flags().Changed("outlen") && cfg.OutputLength != 0 {
			resolvedOutlen = cfg.OutputLength
		}

		key, err := resolveKey(cfg)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return sumReader(os.Stdin, "-", key, resolvedOutlen)
		}

		for _, path := range args {
			if err := sumFile(path, key, resolvedOutlen); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	SumCmd.Flags().IntVar(&outlen, "outlen", config.DefaultOutputLength, "digest output length in bytes, 1-64")
	SumCmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded MAC key")
	SumCmd.Flags().StringVar(&keyFile, "key-file", "", "path to a raw-bytes MAC key file")
}

func resolveKey(cfg *config.Configuration) ([]byte, error) {
	if keyFile != "" {
		key, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file %s: %w", keyFile, err)
		}
		return key, nil
	}

	hexKey := keyHex
	if hexKey == "" {
		hexKey = cfg.Key
	}
	if hexKey == "" {
		return nil, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding --key: %w", err)
	}
	return key, nil
}

func sumFile(path string, key []byte, outlen int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return sumReader(f, path, key, outlen)
}

func sumReader(r io.Reader, label string, key []byte, outlen int) error {
	if len(key) == 0 {
		digest, err := blake2b.FromReader512(outlen, r)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", label, err)
		}
		logrus.WithField("file", label).Debug("hashed")
		fmt.Printf("%s  %s\n", digest.Hex(), label)
		return nil
	}

	d, err := blake2b.NewDigest(key, outlen)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", label, err)
	}

	buf := make([]byte, 64*1024)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			d.Write(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", label, readErr)
		}
	}

	digest := blake2b.NewDigest512(d.Sum(nil))
	logrus.WithField("file", label).Debug("hashed")
	fmt.Printf("%s  %s\n", digest.Hex(), label)
	return nil
}
