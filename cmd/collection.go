package cmd

import (
	"hearth-mirror/feature/collection"

	"github.com/spf13/cobra"
)

// collectionRun opens a session and prints the result of read.
func collectionRun(read func(*collection.Service) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		out, err := read(collection.NewService(s))
		if err != nil {
			return err
		}
		return printJSON(out)
	}
}

var collectionCmd = &cobra.Command{
	Use:   "collection [card-id]",
	Short: "Print the card collection",
	Long:  `Prints one entry per owned card id, or only the entry of the given card id.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return collectionRun(func(svc *collection.Service) (any, error) {
			if len(args) == 1 {
				return svc.ReadCollectionCard(args[0])
			}
			return svc.ReadCollection()
		})(cmd, args)
	},
}

var cardBacksCmd = &cobra.Command{
	Use:   "cardbacks",
	Short: "Print the owned card backs",
	RunE: collectionRun(func(svc *collection.Service) (any, error) {
		return svc.ReadCardBacks()
	}),
}

var heroSkinsCmd = &cobra.Command{
	Use:   "heroskins",
	Short: "Print the owned Battlegrounds hero skins",
	RunE: collectionRun(func(svc *collection.Service) (any, error) {
		return svc.ReadBattlegroundsHeroSkins()
	}),
}

var dustCmd = &cobra.Command{
	Use:   "dust",
	Short: "Print the crafting values of every card",
	RunE: collectionRun(func(svc *collection.Service) (any, error) {
		return svc.ReadDustInfo()
	}),
}

func init() {
	RootCmd.AddCommand(collectionCmd)
	RootCmd.AddCommand(cardBacksCmd)
	RootCmd.AddCommand(heroSkinsCmd)
	RootCmd.AddCommand(dustCmd)
}
