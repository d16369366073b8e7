package mercenaries

import (
	"testing"

	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/core/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ability builds an ability record whose tier list holds one card per tier.
func ability(unlockLevel, tier int, cards ...string) map[string]any {
	tiers := make([]any, len(cards))
	for i, cardID := range cards {
		tiers[i] = map[string]any{fieldAbilityTier: i + 1, fieldTierCardID: cardID}
	}
	return memgraph.Object("LettuceAbility", map[string]any{
		fieldAbilityUnlockLevel: unlockLevel,
		fieldAbilityTier:        tier,
		fieldAbilityTierList:    memgraph.List(tiers...),
	})
}

// mercenary builds a collectible mercenary record.
func mercenary(id, level int, abilities ...any) map[string]any {
	return memgraph.Object("LettuceMercenary", map[string]any{
		fieldMercID:        id,
		fieldMercLevel:     level,
		fieldMercAbilities: memgraph.List(abilities...),
		fieldMercAttack:    id % 10,
		fieldMercHealth:    id%10 + 5,
		fieldMercOwned:     true,
		fieldMercRarity:    3,
		fieldMercRole:      1,
	})
}

// withMercenaries installs the collectible mercenary list on img and returns
// the CollectionManager instance.
func withMercenaries(img *memgraph.Image, mercs ...any) map[string]any {
	instance := map[string]any{fieldCollectibleMercenaries: memgraph.List(mercs...)}
	img.Classes[classCollectionManager] = map[string]any{fieldInstance: instance}
	return instance
}

// withMap installs the active bounty map on img.
func withMap(img *memgraph.Image, m map[string]any) {
	img.Caches[cacheLettuceMap] = map[string]any{fieldMap: m}
}

func newService(t *testing.T, img *memgraph.Image) *Service {
	t.Helper()
	s, err := session.New(img, zap.NewNop())
	require.NoError(t, err)
	return NewService(s)
}
