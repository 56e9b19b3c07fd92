package cmd

import (
	"errors"
	"fmt"
	"os"

	"msforge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errDifferent makes the process exit with status 1 without logging, the way
// diff tools report unequal inputs.
var errDifferent = errors.New("documents differ")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "msforge",
	Short: "Mass spectrometry document toolkit",
	Long: `msforge compares, filters, thresholds and merges mass spectrometry
document snapshots stored locally or in an S3 compatible bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if errors.Is(err, errDifferent) {
			os.Exit(1)
		}
		// Console format at debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(2)
	}
}
