package graph

import (
	"strconv"
)

// Ref is an optional reference into the graph: either present or absent.
// The zero Ref is absent.
type Ref struct {
	scope *Scope
	node  Node
	path  string
	raced bool
}

// Present reports whether the reference points at a node.
func (r Ref) Present() bool {
	return r.node != nil && r.live()
}

// Node returns the underlying node when present.
func (r Ref) Node() (Node, bool) {
	if !r.Present() {
		return nil, false
	}
	return r.node, true
}

// Broken reports whether the traversal that produced this reference was cut
// short, either by a torn read or by an acquisition failure of the scope.
// Iterators stop on a broken reference instead of skipping it.
func (r Ref) Broken() bool {
	return r.raced || !r.live()
}

// Path returns the traversal path of this reference, for diagnostics.
func (r Ref) Path() string {
	return r.path
}

// Scope returns the scope this reference was read in.
func (r Ref) Scope() *Scope {
	return r.scope
}

// Field resolves a named field.
func (r Ref) Field(name string) Ref {
	if !r.Present() {
		return r.absent(r.path + "." + name)
	}
	n, err := r.node.Field(name)
	return r.child(n, err, r.path+"."+name)
}

// Index resolves an array element.
func (r Ref) Index(i int) Ref {
	path := r.path + "[" + strconv.Itoa(i) + "]"
	if !r.Present() {
		return r.absent(path)
	}
	n, err := r.node.Index(i)
	return r.child(n, err, path)
}

// Len returns the physical length of an array node.
func (r Ref) Len() (int, bool) {
	if !r.Present() {
		return 0, false
	}
	n, err := r.node.Len()
	if err != nil {
		if r.scope != nil {
			r.scope.record(r.path, err)
		}
		return 0, false
	}
	return n, true
}

// TypeName returns the runtime type name, or "" when absent.
func (r Ref) TypeName() string {
	if !r.Present() {
		return ""
	}
	return r.node.TypeName()
}

// AsInt converts a terminal node to int.
func (r Ref) AsInt() (int, bool) {
	if !r.Present() {
		return 0, false
	}
	return ToInt(r.node.Value())
}

// AsString converts a terminal node to string.
func (r Ref) AsString() (string, bool) {
	if !r.Present() {
		return "", false
	}
	return ToString(r.node.Value())
}

// AsBool converts a terminal node to bool.
func (r Ref) AsBool() (bool, bool) {
	if !r.Present() {
		return false, false
	}
	return ToBool(r.node.Value())
}

// IntOr returns the int value or def when absent.
func (r Ref) IntOr(def int) int {
	if v, ok := r.AsInt(); ok {
		return v
	}
	return def
}

// StringOr returns the string value or def when absent.
func (r Ref) StringOr(def string) string {
	if v, ok := r.AsString(); ok {
		return v
	}
	return def
}

// BoolOr returns the bool value or def when absent.
func (r Ref) BoolOr(def bool) bool {
	if v, ok := r.AsBool(); ok {
		return v
	}
	return def
}

func (r Ref) live() bool {
	return r.scope == nil || r.scope.err == nil
}

func (r Ref) absent(path string) Ref {
	return Ref{scope: r.scope, path: path, raced: r.raced}
}

func (r Ref) child(n Node, err error, path string) Ref {
	if r.scope == nil {
		if err != nil {
			return Ref{path: path, raced: true}
		}
		return Ref{node: n, path: path}
	}
	return r.scope.ref(n, err, path)
}
