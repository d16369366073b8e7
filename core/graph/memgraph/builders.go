package memgraph

// Object builds a typed object node.
func Object(typeName string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if typeName != "" {
		out[TypeKey] = typeName
	}
	return out
}

// List builds an array-list node whose logical size matches its items.
func List(items ...any) map[string]any {
	return ListWithCapacity(len(items), items...)
}

// ListWithCapacity builds an array-list node whose backing array is padded
// with absent slots up to capacity, like a grown List<T>.
func ListWithCapacity(capacity int, items ...any) map[string]any {
	backing := make([]any, max(capacity, len(items)))
	copy(backing, items)
	return map[string]any{
		TypeKey:  "List`1",
		"_items": backing,
		"_size":  len(items),
	}
}

// SlotMap builds a slot-map node from parallel keys and values.
func SlotMap(keys, values []any) map[string]any {
	return map[string]any{
		TypeKey:      "Map`2",
		"keySlots":   keys,
		"valueSlots": values,
		"count":      len(values),
	}
}

// Set builds a hash-set node with one live slot per value.
func Set(values ...any) map[string]any {
	slots := make([]any, len(values))
	for i, v := range values {
		slots[i] = map[string]any{"hashCode": i, "value": v}
	}
	return map[string]any{
		TypeKey:      "HashSet`1",
		"_slots":     slots,
		"_count":     len(values),
		"_lastIndex": len(values),
	}
}

// Entry is a key/value pair of a dictionary node.
type Entry struct {
	Key   any
	Value any
}

// Dictionary builds a bucket-dictionary node.
func Dictionary(entries ...Entry) map[string]any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = map[string]any{"hashCode": i, "key": e.Key, "value": e.Value}
	}
	return map[string]any{
		TypeKey:   "Dictionary`2",
		"entries": out,
		"count":   len(entries),
	}
}
