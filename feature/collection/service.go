package collection

import (
	"fmt"

	"hearth-mirror/core/graph"
	"hearth-mirror/core/session"

	"go.uber.org/zap"
)

const subsystem = "collection"

// Service reads the collection subsystem.
type Service struct {
	session *session.Session
}

// NewService creates a new collection service.
func NewService(s *session.Session) *Service {
	return &Service{session: s}
}

func (s *Service) scope() (*graph.Scope, error) {
	if s == nil || s.session == nil {
		return nil, graph.ErrNilImage
	}
	return s.session.Scope(subsystem)
}

// finish reports the scope outcome of operation op.
func finish(scope *graph.Scope, op string) error {
	if err := scope.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if races := scope.Races(); races > 0 {
		scope.Logger().Info("Extraction finished with torn reads", zap.String("op", op), zap.Int("races", races))
	}
	return nil
}

// TranslateCardID returns the dbf id of cardID, or 0 when unknown.
func (s *Service) TranslateCardID(cardID string) int {
	if s == nil || s.session == nil {
		return 0
	}
	return s.session.Cards().DbfID(cardID)
}

// TranslateDbfID returns the card id of dbfID.
func (s *Service) TranslateDbfID(dbfID int) (string, bool) {
	if s == nil || s.session == nil {
		return "", false
	}
	return s.session.Cards().CardID(dbfID)
}
