package container

import (
	"iter"
	"strings"

	"hearth-mirror/core/graph"
)

// Shape identifies a collection encoding.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeArrayList
	ShapeSlotMap
	ShapeSlotSet
	ShapeDictionary
)

func (s Shape) String() string {
	switch s {
	case ShapeArrayList:
		return "array-list"
	case ShapeSlotMap:
		return "slot-map"
	case ShapeSlotSet:
		return "slot-set"
	case ShapeDictionary:
		return "dictionary"
	default:
		return "unknown"
	}
}

// Container is a read-only view over one encoded collection.
type Container interface {
	// Shape returns the detected encoding.
	Shape() Shape
	// Len returns the logical element count read when the container was opened.
	Len() int
	// Values yields the element nodes (map and dictionary values).
	Values() iter.Seq[graph.Ref]
	// Entries yields key/value pairs. Lists and sets yield an absent key.
	Entries() iter.Seq2[graph.Ref, graph.Ref]
}

// Open detects the shape of ref and returns the matching container.
// Unknown or absent nodes yield an empty container.
func Open(ref graph.Ref) Container {
	return As(Detect(ref), ref)
}

// As opens ref with an explicit shape.
func As(shape Shape, ref graph.Ref) Container {
	switch shape {
	case ShapeArrayList:
		return ArrayList(ref)
	case ShapeSlotMap:
		return SlotMap(ref)
	case ShapeSlotSet:
		return SlotSet(ref)
	case ShapeDictionary:
		return Dictionary(ref)
	default:
		return empty{}
	}
}

// Detect returns the encoding of ref.
func Detect(ref graph.Ref) Shape {
	if !ref.Present() {
		return ShapeUnknown
	}

	if shape := shapeOfType(ref.TypeName()); shape != ShapeUnknown {
		return shape
	}

	switch {
	case ref.Field(fieldListItems).Present():
		return ShapeArrayList
	case ref.Field(fieldMapValues).Present():
		return ShapeSlotMap
	case ref.Field(fieldSetSlots).Present():
		return ShapeSlotSet
	case ref.Field(fieldDictEntries).Present():
		return ShapeDictionary
	default:
		return ShapeUnknown
	}
}

// shapeOfType maps a runtime type name such as
// "System.Collections.Generic.List`1" to a shape.
func shapeOfType(typeName string) Shape {
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		typeName = typeName[i+1:]
	}
	if i := strings.IndexByte(typeName, '`'); i >= 0 {
		typeName = typeName[:i]
	}

	switch typeName {
	case "List":
		return ShapeArrayList
	case "Map":
		return ShapeSlotMap
	case "HashSet":
		return ShapeSlotSet
	case "Dictionary":
		return ShapeDictionary
	default:
		return ShapeUnknown
	}
}

// Count returns the logical size of a container node, or 0 when it is absent.
func Count(ref graph.Ref) int {
	return Open(ref).Len()
}

// First returns the first element of a container, or an absent reference.
func First(c Container) graph.Ref {
	for v := range c.Values() {
		return v
	}
	return graph.Ref{}
}

type empty struct{}

func (empty) Shape() Shape { return ShapeUnknown }
func (empty) Len() int     { return 0 }

func (empty) Values() iter.Seq[graph.Ref] {
	return func(func(graph.Ref) bool) {}
}

func (empty) Entries() iter.Seq2[graph.Ref, graph.Ref] {
	return func(func(graph.Ref, graph.Ref) bool) {}
}

// valuesOf derives Values from an Entries implementation.
func valuesOf(entries iter.Seq2[graph.Ref, graph.Ref]) iter.Seq[graph.Ref] {
	return func(yield func(graph.Ref) bool) {
		for _, v := range entries {
			if !yield(v) {
				return
			}
		}
	}
}

// size reads a non-negative logical count.
func size(ref graph.Ref, field string) int {
	n, ok := ref.Field(field).AsInt()
	if !ok || n < 0 {
		return 0
	}
	return n
}
