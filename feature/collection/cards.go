package collection

import (
	"iter"

	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"
	"hearth-mirror/feature/collection/models"
)

const (
	classCollectionManager = "CollectionManager"
	fieldInstance          = "s_instance"
	fieldCollectibleCards  = "m_collectibleCards"
	fieldEntityDef         = "m_EntityDef"
	fieldCardIDInternal    = "m_cardIdInternal"
	fieldOwnedCount        = "<OwnedCount>k__BackingField"
	fieldPremiumType       = "m_PremiumType"
)

// entry is one collectible card record.
type entry struct {
	cardID  string
	count   int
	premium int
}

func collectibleCards(scope *graph.Scope) graph.Ref {
	return scope.Class(classCollectionManager).Field(fieldInstance).Field(fieldCollectibleCards)
}

// entries yields the records of the collectible card list that carry a card id.
// Records with an empty id are unset slots.
func entries(list graph.Ref) iter.Seq[entry] {
	return func(yield func(entry) bool) {
		for item := range container.ArrayList(list).Values() {
			cardID := item.Field(fieldEntityDef).Field(fieldCardIDInternal).StringOr("")
			if cardID == "" {
				continue
			}
			e := entry{
				cardID:  cardID,
				count:   item.Field(fieldOwnedCount).IntOr(0),
				premium: item.Field(fieldPremiumType).IntOr(models.PremiumNormal),
			}
			if !yield(e) {
				return
			}
		}
	}
}

// accumulator folds the records of one card id.
type accumulator struct {
	card  models.CollectionCard
	base  int
	other int
}

func (a *accumulator) add(e entry) {
	switch e.premium {
	case models.PremiumNormal:
		a.base = e.count
	case models.PremiumGolden:
		a.card.PremiumCount = e.count
	case models.PremiumDiamond:
		a.card.DiamondCount = e.count
	case models.PremiumSignature:
		a.card.SignatureCount = e.count
	case models.PremiumMax:
		a.card.MaxCount = e.count
	default:
		// Unknown tags land in the base count so newer variants are still counted.
		a.other += e.count
	}
}

func (a *accumulator) result() models.CollectionCard {
	card := a.card
	card.Count = a.base + a.other
	card.OtherCount = a.other
	return card
}

// fold groups entries by card id, keeping first-appearance order.
func fold(seq iter.Seq[entry]) []models.CollectionCard {
	index := make(map[string]int)
	var accs []*accumulator
	for e := range seq {
		i, ok := index[e.cardID]
		if !ok {
			i = len(accs)
			index[e.cardID] = i
			accs = append(accs, &accumulator{card: models.CollectionCard{CardID: e.cardID}})
		}
		accs[i].add(e)
	}

	cards := make([]models.CollectionCard, 0, len(accs))
	for _, acc := range accs {
		cards = append(cards, acc.result())
	}
	return cards
}

// ReadCollection returns one entry per owned card id.
func (s *Service) ReadCollection() ([]models.CollectionCard, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	cards := fold(entries(collectibleCards(scope)))
	if err := finish(scope, "read collection"); err != nil {
		return nil, err
	}
	return cards, nil
}

// ReadCollectionCard returns the collection entry of cardID, or nil when the
// card is not part of the collection.
func (s *Service) ReadCollectionCard(cardID string) (*models.CollectionCard, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	only := func(yield func(entry) bool) {
		for e := range entries(collectibleCards(scope)) {
			if e.cardID == cardID && !yield(e) {
				return
			}
		}
	}
	cards := fold(only)
	if err := finish(scope, "read collection card"); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, nil
	}
	return &cards[0], nil
}

// ReadCollectionSize returns the sum of owned count and premium tag over all
// entries with a card id. The figure reproduces a legacy metric and does not
// break down by variant.
func (s *Service) ReadCollectionSize() (int, error) {
	scope, err := s.scope()
	if err != nil {
		return 0, err
	}

	total := 0
	for e := range entries(collectibleCards(scope)) {
		total += e.count + e.premium
	}
	if err := finish(scope, "read collection size"); err != nil {
		return 0, err
	}
	return total, nil
}

// IsCollectionInitialized reports whether the collectible card list has a
// positive logical size.
func (s *Service) IsCollectionInitialized() (bool, error) {
	scope, err := s.scope()
	if err != nil {
		return false, err
	}

	size := container.ArrayList(collectibleCards(scope)).Len()
	if err := finish(scope, "check collection"); err != nil {
		return false, err
	}
	return size > 0, nil
}
