package mercenaries

import (
	"hearth-mirror/core/graph"
	"hearth-mirror/feature/mercenaries/models"
)

const (
	fieldPendingSelection = "_PendingTreasureSelection"
	fieldTreasureOptions  = "_TreasureOptions"
	fieldMercenaryID      = "_MercenaryId"
)

// ReadPendingTreasureSelection returns the treasure choice awaiting the
// player, or nil when there is none: no active map, no pending selection, or
// a selection without options.
func (s *Service) ReadPendingTreasureSelection() (*models.MercenariesPendingTreasureSelection, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	selection := pendingSelection(activeMap(scope))
	if err := finish(scope, "read pending treasure selection"); err != nil {
		return nil, err
	}
	return selection, nil
}

func pendingSelection(m graph.Ref) *models.MercenariesPendingTreasureSelection {
	pending := m.Field(fieldPendingSelection)
	if !pending.Present() {
		return nil
	}
	options := intsOf(pending.Field(fieldTreasureOptions))
	if len(options) == 0 {
		return nil
	}
	return &models.MercenariesPendingTreasureSelection{
		MercenaryID: pending.Field(fieldMercenaryID).IntOr(0),
		Options:     options,
	}
}
