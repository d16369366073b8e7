package cmd

import (
	"hearth-mirror/feature/mercenaries"

	"github.com/spf13/cobra"
)

func mercenariesRun(read func(*mercenaries.Service) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		out, err := read(mercenaries.NewService(s))
		if err != nil {
			return err
		}
		return printJSON(out)
	}
}

var mercenariesCmd = &cobra.Command{
	Use:   "mercenaries",
	Short: "Print the Mercenaries pvp rating and bounty map",
	RunE: mercenariesRun(func(svc *mercenaries.Service) (any, error) {
		return svc.ReadPlayerInfo()
	}),
}

var mercenariesCollectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Print the mercenary collection, teams and village visitors",
	RunE: mercenariesRun(func(svc *mercenaries.Service) (any, error) {
		return svc.ReadCollectionInfo()
	}),
}

var treasureCmd = &cobra.Command{
	Use:   "treasure",
	Short: "Print the pending treasure selection",
	Long:  `Prints the treasure choice awaiting the player, or null when there is none.`,
	RunE: mercenariesRun(func(svc *mercenaries.Service) (any, error) {
		return svc.ReadPendingTreasureSelection()
	}),
}

func init() {
	mercenariesCmd.AddCommand(mercenariesCollectionCmd)
	RootCmd.AddCommand(mercenariesCmd)
	RootCmd.AddCommand(treasureCmd)
}
