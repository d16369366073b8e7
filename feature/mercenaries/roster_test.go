package mercenaries

import (
	"testing"

	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/feature/mercenaries/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoster_AbilityUnlockLevel(t *testing.T) {
	img := memgraph.NewImage()
	withMercenaries(img, mercenary(101, 10,
		ability(1, 2, "LT21_001", "LT21_001_02", "LT21_001_03"),
		ability(10, 1, "LT21_002", "LT21_002_02"),
		ability(11, 1, "LT21_003"),
	))

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	require.Len(t, collection.Mercenaries, 1)

	assert.Equal(t, []models.MercenaryAbility{
		{CardID: "LT21_001_02", Tier: 2},
		{CardID: "LT21_002", Tier: 1},
	}, collection.Mercenaries[0].Abilities)
}

func TestBuildRoster_TierWithoutEntryIsSkipped(t *testing.T) {
	img := memgraph.NewImage()
	withMercenaries(img, mercenary(101, 30,
		ability(1, 4, "LT21_001", "LT21_001_02"),
		memgraph.Object("LettuceAbility", map[string]any{fieldAbilityUnlockLevel: 1}),
		ability(1, 1, "LT21_002"),
	))

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	require.Len(t, collection.Mercenaries, 1)
	assert.Equal(t, []models.MercenaryAbility{{CardID: "LT21_002", Tier: 1}}, collection.Mercenaries[0].Abilities)
}

func TestBuildRoster_FirstTierMatchWins(t *testing.T) {
	img := memgraph.NewImage()
	withMercenaries(img, mercenary(101, 30, memgraph.Object("LettuceAbility", map[string]any{
		fieldAbilityTier: 2,
		fieldAbilityTierList: memgraph.List(
			map[string]any{fieldAbilityTier: 2, fieldTierCardID: "FIRST"},
			map[string]any{fieldAbilityTier: 2, fieldTierCardID: "SECOND"},
		),
	})))

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	assert.Equal(t, []models.MercenaryAbility{{CardID: "FIRST", Tier: 2}}, collection.Mercenaries[0].Abilities)
}

func TestBuildRoster_Fields(t *testing.T) {
	merc := mercenary(42, 5)
	merc[fieldMercCurrencyAmount] = 250
	merc[fieldMercExperience] = 1200
	merc[fieldMercIsFullyUpgraded] = true
	merc[fieldMercArtVariations] = memgraph.List(
		map[string]any{fieldArtPremium: 0},
		map[string]any{fieldArtPremium: 2},
		map[string]any{},
		map[string]any{fieldArtPremium: 1},
	)
	merc[fieldMercEquipments] = memgraph.List(
		map[string]any{
			fieldEquipmentID:       7,
			fieldEquipmentCardType: 4,
			fieldEquipmentEquipped: true,
			fieldEquipmentOwned:    true,
			fieldEquipmentTier:     3,
		},
		map[string]any{fieldEquipmentID: 8},
	)

	img := memgraph.NewImage()
	withMercenaries(img, merc)

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	require.Len(t, collection.Mercenaries, 1)

	assert.Equal(t, models.Mercenary{
		ID:         42,
		Level:      5,
		Abilities:  []models.MercenaryAbility{},
		Equipments: []models.MercenaryEquipment{
			{ID: 7, CardType: 4, Tier: 3, Equipped: true, Owned: true},
			{ID: 8},
		},
		TreasureCardDbfIDs: []int{},
		Attack:             2,
		Health:             7,
		CurrencyAmount:     250,
		Experience:         1200,
		IsFullyUpgraded:    true,
		Owned:              true,
		Premium:            2,
		Rarity:             3,
		Role:               1,
	}, collection.Mercenaries[0])
}

func TestBuildRoster_SkipsMercenaryWithoutID(t *testing.T) {
	img := memgraph.NewImage()
	withMercenaries(img, map[string]any{fieldMercLevel: 3}, mercenary(7, 1), nil)

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	require.Len(t, collection.Mercenaries, 1)
	assert.Equal(t, 7, collection.Mercenaries[0].ID)
}

func TestBuildRoster_Filter(t *testing.T) {
	img := memgraph.NewImage()
	withMercenaries(img,
		mercenary(1, 30, ability(1, 1, "A")),
		mercenary(2, 30, ability(1, 1, "B")),
		mercenary(3, 30, ability(1, 1, "C")),
	)
	scope, err := newService(t, img).scope()
	require.NoError(t, err)

	all := buildRoster(scope, collectibleMercenaries(scope), nil)
	filtered := buildRoster(scope, collectibleMercenaries(scope), newIDSet([]int{3, 1}))
	none := buildRoster(scope, collectibleMercenaries(scope), newIDSet(nil))

	require.Len(t, all, 3)
	assert.Equal(t, []models.Mercenary{all[0], all[2]}, filtered)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestBuildRoster_TreasureAssignments(t *testing.T) {
	img := memgraph.NewImage()
	withMercenaries(img, mercenary(1, 1), mercenary(2, 1))
	withMap(img, map[string]any{
		fieldTreasureAssignmentList: map[string]any{
			fieldTreasureAssignments: memgraph.List(
				map[string]any{fieldAssignedMercenary: 2, fieldTreasureCard: 9001},
				map[string]any{fieldAssignedMercenary: 99, fieldTreasureCard: 9002},
				map[string]any{fieldAssignedMercenary: 2, fieldTreasureCard: 9003},
				map[string]any{fieldAssignedMercenary: 1},
			),
		},
	})

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	require.Len(t, collection.Mercenaries, 2)
	assert.Equal(t, []int{}, collection.Mercenaries[0].TreasureCardDbfIDs)
	assert.Equal(t, []int{9001, 9003}, collection.Mercenaries[1].TreasureCardDbfIDs)
}

func TestBuildRoster_TornAbilityList(t *testing.T) {
	merc := mercenary(1, 30)
	merc[fieldMercAbilities] = map[string]any{
		memgraph.TypeKey: "List`1",
		"_items":         []any{ability(1, 1, "A")},
		"_size":          3,
	}
	img := memgraph.NewImage()
	withMercenaries(img, merc, mercenary(2, 30, ability(1, 1, "B")))

	collection, err := newService(t, img).ReadCollectionInfo()
	require.NoError(t, err)
	require.Len(t, collection.Mercenaries, 2)
	assert.Equal(t, []models.MercenaryAbility{{CardID: "A", Tier: 1}}, collection.Mercenaries[0].Abilities)
	assert.Equal(t, []models.MercenaryAbility{{CardID: "B", Tier: 1}}, collection.Mercenaries[1].Abilities)
}
