package dbf

import (
	"sync"

	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	classGameDbf     = "GameDbf"
	fieldCardTable   = "Card"
	fieldRecords     = "m_records"
	fieldRecordID    = "m_ID"
	fieldRecordCard  = "m_noteMiniGuid"
	populateFlightID = "populate"
)

// Table is a lazily populated bidirectional card id <-> dbf id map.
type Table struct {
	image  graph.Image
	logger *zap.Logger

	mu     sync.RWMutex
	byCard map[string]int
	byDbf  map[int]string
	sf     singleflight.Group
}

// NewTable creates an empty table backed by image.
func NewTable(image graph.Image, logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Table{image: image, logger: logger}
}

// DbfID returns the dbf id of cardID, or 0 when unknown.
func (t *Table) DbfID(cardID string) int {
	if err := t.Load(); err != nil {
		t.logger.Warn("Card table unavailable", zap.Error(err))
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.byCard[cardID]
}

// CardID returns the card id of dbfID.
func (t *Table) CardID(dbfID int) (string, bool) {
	if err := t.Load(); err != nil {
		t.logger.Warn("Card table unavailable", zap.Error(err))
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	cardID, ok := t.byDbf[dbfID]
	return cardID, ok
}

// Len returns the number of cached card ids.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byCard)
}

// Loaded reports whether the table has been populated.
func (t *Table) Loaded() bool {
	return t.Len() > 0
}

// Load populates the table unless it already holds data.
// It returns the acquisition error of the population pass, if any.
func (t *Table) Load() error {
	if t.Loaded() {
		return nil
	}

	_, err, _ := t.sf.Do(populateFlightID, func() (interface{}, error) {
		// Double-check after joining the flight
		if t.Loaded() {
			return nil, nil
		}

		byCard, byDbf, err := t.read()
		if err != nil {
			return nil, err
		}
		if len(byCard) == 0 {
			t.logger.Debug("Card table not loaded yet, will retry on next lookup")
			return nil, nil
		}

		t.mu.Lock()
		t.byCard = byCard
		t.byDbf = byDbf
		t.mu.Unlock()

		t.logger.Info("Card table loaded", zap.Int("cards", len(byCard)))
		return nil, nil
	})
	return err
}

// read performs one pass over the card records. A pass cut short by a torn
// read returns no records.
func (t *Table) read() (map[string]int, map[int]string, error) {
	scope, err := graph.NewScope(t.image, t.logger)
	if err != nil {
		return nil, nil, err
	}

	records := scope.Class(classGameDbf).Field(fieldCardTable).Field(fieldRecords)
	byCard := make(map[string]int)
	byDbf := make(map[int]string)
	for record := range container.ArrayList(records).Values() {
		id, ok := record.Field(fieldRecordID).AsInt()
		if !ok {
			continue
		}
		cardID, ok := record.Field(fieldRecordCard).AsString()
		if !ok || cardID == "" {
			continue
		}
		byCard[cardID] = id
		byDbf[id] = cardID
	}

	if err := scope.Err(); err != nil {
		return nil, nil, err
	}
	if races := scope.Races(); races > 0 {
		// A torn pass is discarded like an empty one so the next lookup reads again.
		t.logger.Debug("Card table read was torn, discarding", zap.Int("races", races), zap.Int("cards", len(byCard)))
		return nil, nil, nil
	}
	return byCard, byDbf, nil
}
