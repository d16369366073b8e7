package cmd

import (
	"fmt"
	"os"

	"hearth-mirror/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dumpFlag   string
	objectFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hearth-mirror",
	Short: "Hearthstone memory graph reader",
	Long: `hearth-mirror reads the collection and Mercenaries state of a Hearthstone
client from a dump of its object graph and prints it as JSON.
Dumps are read from a local file or fetched from an S3 bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Errors are reported on the console logger with ISO8601 timestamps (DevConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&dumpFlag, "dump", "", "read the graph dump from this file")
	RootCmd.PersistentFlags().StringVar(&objectFlag, "object", "", "fetch the graph dump from this object of the storage bucket")
	RootCmd.MarkFlagsMutuallyExclusive("dump", "object")
}
