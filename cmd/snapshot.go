package cmd

import (
	"time"

	"hearth-mirror/core/session"
	"hearth-mirror/feature/collection"
	collectionModels "hearth-mirror/feature/collection/models"
	"hearth-mirror/feature/mercenaries"
	mercenariesModels "hearth-mirror/feature/mercenaries/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the result of every extractor read from one dump.
type Snapshot struct {
	Collection      []collectionModels.CollectionCard                      `json:"collection"`
	CollectionSize  int                                                    `json:"collection_size"`
	CardBacks       []collectionModels.CollectionCardBack                  `json:"card_backs"`
	HeroSkins       []collectionModels.BattlegroundsHeroSkin               `json:"hero_skins"`
	Dust            []collectionModels.DustInfoCard                        `json:"dust"`
	Mercenaries     *mercenariesModels.MercenariesInfo                     `json:"mercenaries"`
	MercenaryRoster *mercenariesModels.MercenariesCollection               `json:"mercenary_roster"`
	PendingTreasure *mercenariesModels.MercenariesPendingTreasureSelection `json:"pending_treasure"`
}

// readSnapshot runs the extractors concurrently. Each one reads in its own
// scope; the first acquisition failure cancels the result.
func readSnapshot(s *session.Session) (*Snapshot, error) {
	coll := collection.NewService(s)
	merc := mercenaries.NewService(s)

	var snap Snapshot
	var g errgroup.Group

	g.Go(func() (err error) {
		snap.Collection, err = coll.ReadCollection()
		return err
	})
	g.Go(func() (err error) {
		snap.CollectionSize, err = coll.ReadCollectionSize()
		return err
	})
	g.Go(func() (err error) {
		snap.CardBacks, err = coll.ReadCardBacks()
		return err
	})
	g.Go(func() (err error) {
		snap.HeroSkins, err = coll.ReadBattlegroundsHeroSkins()
		return err
	})
	g.Go(func() (err error) {
		snap.Dust, err = coll.ReadDustInfo()
		return err
	})
	g.Go(func() (err error) {
		snap.Mercenaries, err = merc.ReadPlayerInfo()
		return err
	})
	g.Go(func() (err error) {
		snap.MercenaryRoster, err = merc.ReadCollectionInfo()
		return err
	})
	g.Go(func() (err error) {
		snap.PendingTreasure, err = merc.ReadPendingTreasureSelection()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the state of every subsystem",
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}

		snap, err := readSnapshot(s)
		if err != nil {
			return err
		}

		s.Logger().Info("Snapshot completed",
			zap.Int("cards", len(snap.Collection)),
			zap.Int("dbf_records", s.Cards().Len()),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return printJSON(snap)
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
}
