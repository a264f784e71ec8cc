// Command blake2bsum prints BLAKE2b digests of files or standard input.
// It consumes only the public blake2b contract (NewDigest, Write, Sum,
// Digest512) to do its hashing, the way distribution-distribution's
// cmd/registry wraps its application package in a thin main that parses
// flags/config and hands off to cobra.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("blake2bsum failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
