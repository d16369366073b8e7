// Package session holds the state shared by the extractors of one host session:
// the image being read, the card id translation table and the logger.
//
// A Session is created once per attached client and handed to the feature
// services. It is safe for concurrent use; each extraction opens its own scope.
package session

import (
	"hearth-mirror/core/dbf"
	"hearth-mirror/core/graph"

	"go.uber.org/zap"
)

// Session is the context object passed to extractors.
type Session struct {
	image  graph.Image
	logger *zap.Logger
	cards  *dbf.Table
}

// New creates a session for image.
func New(image graph.Image, logger *zap.Logger) (*Session, error) {
	if image == nil {
		return nil, graph.ErrNilImage
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		image:  image,
		logger: logger,
		cards:  dbf.NewTable(image, logger.Named("dbf")),
	}, nil
}

// Image returns the image read by this session.
func (s *Session) Image() graph.Image {
	return s.image
}

// Logger returns the session logger.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Cards returns the card id translation table.
func (s *Session) Cards() *dbf.Table {
	return s.cards
}

// Scope opens a read scope for one extraction of subsystem.
func (s *Session) Scope(subsystem string) (*graph.Scope, error) {
	if s == nil {
		return nil, graph.ErrNilImage
	}
	return graph.NewScope(s.image, s.logger.With(zap.String("subsystem", subsystem)))
}
