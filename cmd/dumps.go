package cmd

import (
	"fmt"

	"hearth-mirror/core/config"
	"hearth-mirror/core/storage"

	"github.com/spf13/cobra"
)

var dumpsCmd = &cobra.Command{
	Use:   "dumps [prefix]",
	Short: "List the graph dumps stored in the bucket",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		dumps, err := storage.ListDumps(cmd.Context(), client, cfg.Storage.Bucket, prefix)
		if err != nil {
			return err
		}
		return printJSON(dumps)
	},
}

func init() {
	RootCmd.AddCommand(dumpsCmd)
}
