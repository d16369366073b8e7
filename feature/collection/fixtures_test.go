package collection

import (
	"testing"

	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/core/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// card builds a collectible card record.
func card(cardID string, premium, count int) map[string]any {
	return memgraph.Object("CollectibleCard", map[string]any{
		fieldEntityDef:   map[string]any{fieldCardIDInternal: cardID},
		fieldOwnedCount:  count,
		fieldPremiumType: premium,
	})
}

// withCollection installs the collectible card list on img.
func withCollection(img *memgraph.Image, list any) map[string]any {
	instance := map[string]any{fieldCollectibleCards: list}
	img.Classes[classCollectionManager] = map[string]any{fieldInstance: instance}
	return instance
}

func newService(t *testing.T, img *memgraph.Image) *Service {
	t.Helper()
	s, err := session.New(img, zap.NewNop())
	require.NoError(t, err)
	return NewService(s)
}
