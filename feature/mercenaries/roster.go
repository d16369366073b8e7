package mercenaries

import (
	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"
	"hearth-mirror/feature/mercenaries/models"

	"go.uber.org/zap"
)

const (
	classCollectionManager      = "CollectionManager"
	fieldInstance               = "s_instance"
	fieldCollectibleMercenaries = "m_collectibleMercenaries"

	fieldMercID              = "ID"
	fieldMercLevel           = "m_level"
	fieldMercAbilities       = "m_abilityList"
	fieldMercEquipments      = "m_equipmentList"
	fieldMercArtVariations   = "m_artVariations"
	fieldMercAttack          = "m_attack"
	fieldMercHealth          = "m_health"
	fieldMercCurrencyAmount  = "m_currencyAmount"
	fieldMercExperience      = "m_experience"
	fieldMercIsFullyUpgraded = "m_isFullyUpgraded"
	fieldMercOwned           = "m_owned"
	fieldMercRarity          = "m_rarity"
	fieldMercRole            = "m_role"

	fieldAbilityUnlockLevel = "m_unlockLevel"
	fieldAbilityTier        = "m_tier"
	fieldAbilityTierList    = "m_tierList"
	fieldTierCardID         = "m_cardId"

	fieldEquipmentID       = "ID"
	fieldEquipmentCardType = "m_cardType"
	fieldEquipmentEquipped = "m_isEquipped"
	fieldEquipmentOwned    = "m_owned"
	fieldEquipmentTier     = "m_tier"

	fieldArtPremium = "m_premium"

	fieldTreasureAssignmentList = "_TreasureAssignmentList"
	fieldTreasureAssignments    = "_TreasureAssignments"
	fieldAssignedMercenary      = "_AssignedMercenary"
	fieldTreasureCard           = "_TreasureCard"
)

func collectibleMercenaries(scope *graph.Scope) graph.Ref {
	return scope.Class(classCollectionManager).Field(fieldInstance).Field(fieldCollectibleMercenaries)
}

// idSet restricts a roster to the listed mercenary ids. A nil set keeps every
// mercenary.
type idSet map[int]struct{}

func newIDSet(ids []int) idSet {
	set := make(idSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s idSet) keeps(id int) bool {
	if s == nil {
		return true
	}
	_, ok := s[id]
	return ok
}

// buildRoster reads the mercenaries of list, keeping those in only, and
// attaches the treasures assigned on the active map.
func buildRoster(scope *graph.Scope, list graph.Ref, only idSet) []models.Mercenary {
	roster := make([]models.Mercenary, 0)
	for item := range container.Open(list).Values() {
		id, ok := item.Field(fieldMercID).AsInt()
		if !ok || !only.keeps(id) {
			continue
		}
		roster = append(roster, readMercenary(scope, id, item))
	}
	assignTreasures(scope, roster)
	return roster
}

func readMercenary(scope *graph.Scope, id int, merc graph.Ref) models.Mercenary {
	level := merc.Field(fieldMercLevel).IntOr(0)
	return models.Mercenary{
		ID:                 id,
		Level:              level,
		Abilities:          readAbilities(scope, id, level, merc.Field(fieldMercAbilities)),
		Equipments:         readEquipments(merc.Field(fieldMercEquipments)),
		TreasureCardDbfIDs: make([]int, 0),
		Attack:             merc.Field(fieldMercAttack).IntOr(0),
		Health:             merc.Field(fieldMercHealth).IntOr(0),
		CurrencyAmount:     merc.Field(fieldMercCurrencyAmount).IntOr(0),
		Experience:         merc.Field(fieldMercExperience).IntOr(0),
		IsFullyUpgraded:    merc.Field(fieldMercIsFullyUpgraded).BoolOr(false),
		Owned:              merc.Field(fieldMercOwned).BoolOr(false),
		Premium:            premiumOf(merc.Field(fieldMercArtVariations)),
		Rarity:             merc.Field(fieldMercRarity).IntOr(0),
		Role:               merc.Field(fieldMercRole).IntOr(0),
	}
}

// readAbilities returns the abilities unlocked at level, each at its
// selected tier.
func readAbilities(scope *graph.Scope, mercID, level int, list graph.Ref) []models.MercenaryAbility {
	abilities := make([]models.MercenaryAbility, 0)
	for ability := range container.Open(list).Values() {
		if ability.Field(fieldAbilityUnlockLevel).IntOr(0) > level {
			continue
		}
		tier, ok := selectedTier(ability)
		if !ok {
			scope.Logger().Warn("Ability has no entry for its selected tier, skipping",
				zap.Int("mercenary_id", mercID),
				zap.String("path", ability.Path()))
			continue
		}
		abilities = append(abilities, tier)
	}
	return abilities
}

// selectedTier returns the first tier list entry matching the ability's tier.
func selectedTier(ability graph.Ref) (models.MercenaryAbility, bool) {
	want, ok := ability.Field(fieldAbilityTier).AsInt()
	if !ok {
		return models.MercenaryAbility{}, false
	}
	for tier := range container.Open(ability.Field(fieldAbilityTierList)).Values() {
		if got, ok := tier.Field(fieldAbilityTier).AsInt(); ok && got == want {
			return models.MercenaryAbility{
				CardID: tier.Field(fieldTierCardID).StringOr(""),
				Tier:   got,
			}, true
		}
	}
	return models.MercenaryAbility{}, false
}

func readEquipments(list graph.Ref) []models.MercenaryEquipment {
	equipments := make([]models.MercenaryEquipment, 0)
	for equipment := range container.Open(list).Values() {
		equipments = append(equipments, models.MercenaryEquipment{
			ID:       equipment.Field(fieldEquipmentID).IntOr(0),
			CardType: equipment.Field(fieldEquipmentCardType).IntOr(0),
			Tier:     equipment.Field(fieldEquipmentTier).IntOr(0),
			Equipped: equipment.Field(fieldEquipmentEquipped).BoolOr(false),
			Owned:    equipment.Field(fieldEquipmentOwned).BoolOr(false),
		})
	}
	return equipments
}

// premiumOf returns the highest premium among art variations, 0 without any.
func premiumOf(variations graph.Ref) int {
	premium := 0
	for variation := range container.Open(variations).Values() {
		premium = max(premium, variation.Field(fieldArtPremium).IntOr(0))
	}
	return premium
}

// assignTreasures appends the treasure cards assigned on the active map to
// the roster member they belong to. Assignments to mercenaries outside the
// roster are dropped.
func assignTreasures(scope *graph.Scope, roster []models.Mercenary) {
	if len(roster) == 0 {
		return
	}
	assignments := activeMap(scope).Field(fieldTreasureAssignmentList).Field(fieldTreasureAssignments)
	if !assignments.Present() {
		return
	}

	byID := make(map[int]int, len(roster))
	for i := len(roster) - 1; i >= 0; i-- {
		byID[roster[i].ID] = i
	}
	for assignment := range container.Open(assignments).Values() {
		mercID, ok := assignment.Field(fieldAssignedMercenary).AsInt()
		if !ok {
			continue
		}
		cardDbfID, ok := assignment.Field(fieldTreasureCard).AsInt()
		if !ok {
			continue
		}
		if i, ok := byID[mercID]; ok {
			roster[i].TreasureCardDbfIDs = append(roster[i].TreasureCardDbfIDs, cardDbfID)
		}
	}
}
