// Package graph defines the contract between the extractors and the layer that
// reads the remote object graph.
//
// The acquisition layer (process attach, type metadata decoding, field indexing)
// lives outside this module. It is consumed through two small interfaces:
//
//	type Node interface {
//	    Field(name string) (Node, error)
//	    Index(i int) (Node, error)
//	    Len() (int, error)
//	    TypeName() string
//	    Value() any
//	}
//
//	type Image interface {
//	    Class(name string) (Node, error)
//	    Service(name string) (Node, error)
//	    CacheService(name string) (Node, error)
//	}
//
// A nil Node with a nil error means "absent". Errors are reserved for reads that
// could not be performed at all.
//
// # Optional references
//
// Extractors never touch Node directly. They walk Ref values produced by a Scope.
// A Ref is either present or absent; chaining Field or Index on an absent Ref
// yields another absent Ref, and terminal conversions report presence explicitly:
//
//	scope, _ := graph.NewScope(image, logger)
//	size, ok := scope.Class("CollectionManager").Field("s_instance").Field("_size").AsInt()
//	owned := entry.Field("<OwnedCount>k__BackingField").IntOr(0)
//
// # Error classification
//
// The Scope classifies every accessor error once:
//   - errors wrapping ErrReadRace are torn reads. The affected Ref becomes absent,
//     the race is counted and logged, and traversal continues elsewhere.
//   - anything else is an acquisition failure. It is recorded as an *AcquisitionError,
//     every later Ref of the scope is absent, and Scope.Err reports it so the
//     extractor can return it to the caller unmodified.
package graph
