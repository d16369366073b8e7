package mercenaries

import (
	"fmt"

	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"
	"hearth-mirror/core/session"

	"go.uber.org/zap"
)

const subsystem = "mercenaries"

// Service reads the mercenaries subsystem.
type Service struct {
	session *session.Session
}

// NewService creates a new mercenaries service.
func NewService(s *session.Session) *Service {
	return &Service{session: s}
}

func (s *Service) scope() (*graph.Scope, error) {
	if s == nil || s.session == nil {
		return nil, graph.ErrNilImage
	}
	return s.session.Scope(subsystem)
}

func finish(scope *graph.Scope, op string) error {
	if err := scope.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if races := scope.Races(); races > 0 {
		scope.Logger().Info("Extraction finished with torn reads", zap.String("op", op), zap.Int("races", races))
	}
	return nil
}

// activeMap returns the bounty map in progress, or an absent reference.
func activeMap(scope *graph.Scope) graph.Ref {
	return scope.CacheService(cacheLettuceMap).Field(fieldMap)
}

// intsOf returns the integer elements of a container, skipping non-integers.
func intsOf(list graph.Ref) []int {
	ints := make([]int, 0)
	for value := range container.Open(list).Values() {
		if v, ok := value.AsInt(); ok {
			ints = append(ints, v)
		}
	}
	return ints
}
