package collection

import (
	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"
	"hearth-mirror/feature/collection/models"
)

const (
	cacheCardValues        = "NetCacheCardValues"
	fieldValues            = "<Values>k__BackingField"
	fieldKeyName           = "Name"
	fieldKeyPremium        = "Premium"
	fieldBaseBuyValue      = "_BaseBuyValue"
	fieldBaseSellValue     = "_BaseSellValue"
	fieldBuyValueOverride  = "_BuyValueOverride"
	fieldSellValueOverride = "_SellValueOverride"
)

// ReadDustInfo returns the crafting values of every (card, premium) pair
// known to the client. Pairs are not merged across premiums.
func (s *Service) ReadDustInfo() ([]models.DustInfoCard, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	values := scope.CacheService(cacheCardValues).Field(fieldValues)
	cards := make([]models.DustInfoCard, 0)
	for key, value := range container.Dictionary(values).Entries() {
		cardID := key.Field(fieldKeyName).StringOr("")
		if cardID == "" || !value.Present() {
			continue
		}
		cards = append(cards, models.DustInfoCard{
			CardID:            cardID,
			Premium:           key.Field(fieldKeyPremium).IntOr(models.PremiumNormal),
			BuyValue:          value.Field(fieldBaseBuyValue).IntOr(0),
			SellValue:         value.Field(fieldBaseSellValue).IntOr(0),
			BuyValueOverride:  optionalInt(value.Field(fieldBuyValueOverride)),
			SellValueOverride: optionalInt(value.Field(fieldSellValueOverride)),
		})
	}

	if err := finish(scope, "read dust info"); err != nil {
		return nil, err
	}
	return cards, nil
}

func optionalInt(ref graph.Ref) *int {
	v, ok := ref.AsInt()
	if !ok {
		return nil
	}
	return &v
}
