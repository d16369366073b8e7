package graph

import (
	"errors"

	"hearth-mirror/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scope owns the bookkeeping of a single extraction call.
// It is not safe for concurrent use; every call gets its own scope.
type Scope struct {
	id     string
	image  Image
	logger *zap.Logger
	err    error
	races  int
}

// NewScope starts a read against image. The logger is tagged with a fresh read_id
// so that every line produced by the call can be correlated.
func NewScope(image Image, log *zap.Logger) (*Scope, error) {
	if image == nil {
		return nil, ErrNilImage
	}
	if log == nil {
		log = zap.NewNop()
	}

	id := uuid.NewString()
	return &Scope{
		id:     id,
		image:  image,
		logger: logger.WithReadID(log, id),
	}, nil
}

// ID returns the read id of this scope.
func (s *Scope) ID() string {
	return s.id
}

// Logger returns the scope logger.
func (s *Scope) Logger() *zap.Logger {
	return s.logger
}

// Err returns the acquisition failure recorded by this scope, if any.
func (s *Scope) Err() error {
	return s.err
}

// Races returns how many torn reads were absorbed by this scope.
func (s *Scope) Races() int {
	return s.races
}

// Class resolves a class root.
func (s *Scope) Class(name string) Ref {
	if s.err != nil {
		return s.Absent()
	}
	n, err := s.image.Class(name)
	return s.ref(n, err, name)
}

// Service resolves a named service.
func (s *Scope) Service(name string) Ref {
	if s.err != nil {
		return s.Absent()
	}
	n, err := s.image.Service(name)
	return s.ref(n, err, name)
}

// CacheService resolves a side-channel cache entry.
func (s *Scope) CacheService(name string) Ref {
	if s.err != nil {
		return s.Absent()
	}
	n, err := s.image.CacheService(name)
	return s.ref(n, err, "cache:"+name)
}

// Absent returns an absent reference bound to this scope.
func (s *Scope) Absent() Ref {
	return Ref{scope: s}
}

func (s *Scope) ref(n Node, err error, path string) Ref {
	if err != nil {
		raced := s.record(path, err)
		return Ref{scope: s, path: path, raced: raced}
	}
	return Ref{scope: s, node: n, path: path}
}

// record classifies an accessor error and reports whether it was a read race.
func (s *Scope) record(path string, err error) bool {
	if errors.Is(err, ErrReadRace) {
		s.races++
		s.logger.Warn("Read race, skipping sub-traversal", zap.String("path", path), zap.Error(err))
		return true
	}

	if s.err == nil {
		var acq *AcquisitionError
		if !errors.As(err, &acq) {
			acq = &AcquisitionError{Path: path, Err: err}
		}
		s.err = acq
		s.logger.Error("Graph acquisition failed", zap.String("path", path), zap.Error(err))
	}
	return false
}
