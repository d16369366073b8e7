package graph

// Node is a single value of the remote object graph.
type Node interface {
	// Field resolves a named field. A missing field is (nil, nil).
	Field(name string) (Node, error)
	// Index resolves an element of an array node. A missing element is (nil, nil).
	Index(i int) (Node, error)
	// Len returns the physical length of an array node.
	Len() (int, error)
	// TypeName returns the runtime type name, or "" when unknown.
	TypeName() string
	// Value returns the primitive held by a terminal node, or nil.
	Value() any
}

// Image is the entry point into a remote process.
type Image interface {
	// Class resolves the static storage of a class by name.
	Class(name string) (Node, error)
	// Service resolves a named singleton service.
	Service(name string) (Node, error)
	// CacheService resolves a named side-channel cache entry.
	CacheService(name string) (Node, error)
}
