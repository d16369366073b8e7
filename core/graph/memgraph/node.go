package memgraph

import (
	"fmt"

	"hearth-mirror/core/graph"
)

// TypeKey is the mapping key holding a node's runtime type name.
const TypeKey = "$type"

// Fault is a value that fails the read reaching it with Err.
type Fault struct {
	Err error
}

// Race returns a Fault that simulates a torn read.
func Race(detail string) Fault {
	return Fault{Err: fmt.Errorf("%w: %s", graph.ErrReadRace, detail)}
}

type node struct {
	value any
}

// Wrap turns a plain Go value into a graph node. nil yields a nil Node.
func Wrap(value any) graph.Node {
	if value == nil {
		return nil
	}
	return &node{value: normalize(value)}
}

func (n *node) Field(name string) (graph.Node, error) {
	obj, ok := n.value.(map[string]any)
	if !ok {
		return nil, nil
	}
	return resolve(obj[name])
}

func (n *node) Index(i int) (graph.Node, error) {
	arr, ok := n.value.([]any)
	if !ok {
		return nil, nil
	}
	if i < 0 || i >= len(arr) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", graph.ErrReadRace, i, len(arr))
	}
	return resolve(arr[i])
}

func (n *node) Len() (int, error) {
	if arr, ok := n.value.([]any); ok {
		return len(arr), nil
	}
	return 0, nil
}

func (n *node) TypeName() string {
	if obj, ok := n.value.(map[string]any); ok {
		if name, ok := obj[TypeKey].(string); ok {
			return name
		}
	}
	return ""
}

func (n *node) Value() any {
	switch n.value.(type) {
	case map[string]any, []any:
		return nil
	default:
		return n.value
	}
}

func resolve(value any) (graph.Node, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Fault:
		return nil, v.Err
	case *Fault:
		return nil, v.Err
	default:
		return Wrap(v), nil
	}
}

// normalize converts the container types produced by decoders and builders
// into the two shapes the node understands.
func normalize(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = val
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = val
		}
		return out
	case []int:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = val
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = val
		}
		return out
	default:
		return v
	}
}
