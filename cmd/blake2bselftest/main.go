// Command blake2bselftest runs the BLAKE2b reference self-test and reports
// pass or fail. It exercises only blake2b's public contract (RunSelfTest,
// which itself only calls NewDigest/Write/Sum/Sum512) and reports results
// via structured logging, never via print statements embedded in the core.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gtank/blake2/v2/blake2b"
)

var rootCmd = &cobra.Command{
	Use:   "blake2bselftest",
	Short: "blake2bselftest runs the BLAKE2b reference self-test",
}

var selfTestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "`selftest` runs the grand self-test and checks the accumulator digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.WithFields(logrus.Fields{
			"outputLengths": blake2b.SelfTestOutputLengths,
			"inputLengths":  blake2b.SelfTestInputLengths,
		}).Info("running BLAKE2b self-test")

		got, err := blake2b.RunSelfTest()
		if err != nil {
			return fmt.Errorf("self-test run failed: %w", err)
		}

		if !bytes.Equal(got[:], blake2b.SelfTestDigest[:]) {
			logrus.WithFields(logrus.Fields{
				"got":  fmt.Sprintf("%x", got),
				"want": fmt.Sprintf("%x", blake2b.SelfTestDigest),
			}).Error("self-test accumulator mismatch")
			return fmt.Errorf("self-test accumulator mismatch: got %x, want %x", got, blake2b.SelfTestDigest)
		}

		logrus.WithField("digest", fmt.Sprintf("%x", got)).Info("self-test passed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selfTestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("blake2bselftest failed")
		os.Exit(1)
	}
}
