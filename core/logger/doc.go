// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and tags reads of the object graph with their
// read id.
//
// # Read IDs
//
// Every extraction call opens a scope with a fresh read id. WithReadID attaches
// it to the logger so that every torn read or acquisition failure logged during
// the call can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Dump loaded")
//
//	l := logger.WithReadID(log, scope.ID())
//	l.Warn("Read race, skipping sub-traversal", zap.String("path", path))
package logger
