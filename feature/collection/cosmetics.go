package collection

import (
	"hearth-mirror/core/container"
	"hearth-mirror/feature/collection/models"

	"go.uber.org/zap"
)

const (
	cacheCardBacks    = "NetCacheCardBacks"
	fieldCardBacks    = "<CardBacks>k__BackingField"
	cacheHeroSkins    = "NetCacheBattlegroundsHeroSkins"
	fieldOwnedSkins   = "<OwnedBattlegroundsSkins>k__BackingField"
	fieldSkinToCardID = "m_BattlegroundsHeroSkinIdToCardDbfId"
)

// ReadCardBacks returns the owned card backs.
func (s *Service) ReadCardBacks() ([]models.CollectionCardBack, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	cardBacks := make([]models.CollectionCardBack, 0)
	owned := scope.CacheService(cacheCardBacks).Field(fieldCardBacks)
	for value := range container.Open(owned).Values() {
		id, ok := value.AsInt()
		if !ok {
			continue
		}
		cardBacks = append(cardBacks, models.CollectionCardBack{CardBackID: id})
	}

	if err := finish(scope, "read card backs"); err != nil {
		return nil, err
	}
	return cardBacks, nil
}

// ReadBattlegroundsHeroSkins returns the owned Battlegrounds hero skins joined
// with the card they unlock. Owned skin ids without a card mapping are skipped.
func (s *Service) ReadBattlegroundsHeroSkins() ([]models.BattlegroundsHeroSkin, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	mapping := scope.Class(classCollectionManager).Field(fieldInstance).Field(fieldSkinToCardID)
	skinToCard := make(map[int]int)
	for key, value := range container.SlotMap(mapping).Entries() {
		skinID, ok := key.AsInt()
		if !ok {
			continue
		}
		cardDbfID, ok := value.AsInt()
		if !ok {
			continue
		}
		skinToCard[skinID] = cardDbfID
	}

	skins := make([]models.BattlegroundsHeroSkin, 0)
	owned := scope.CacheService(cacheHeroSkins).Field(fieldOwnedSkins)
	for value := range container.Open(owned).Values() {
		skinID, ok := value.AsInt()
		if !ok {
			continue
		}
		cardDbfID, ok := skinToCard[skinID]
		if !ok {
			scope.Logger().Debug("Owned hero skin has no card mapping", zap.Int("skin_id", skinID))
			continue
		}
		skins = append(skins, models.BattlegroundsHeroSkin{SkinID: skinID, CardDbfID: cardDbfID})
	}

	if err := finish(scope, "read hero skins"); err != nil {
		return nil, err
	}

	for i := range skins {
		skins[i].CardID, _ = s.session.Cards().CardID(skins[i].CardDbfID)
	}
	return skins, nil
}
