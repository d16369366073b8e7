package container

import (
	"iter"

	"hearth-mirror/core/graph"
)

const (
	fieldListItems = "_items"
	fieldListSize  = "_size"

	fieldMapKeys   = "keySlots"
	fieldMapValues = "valueSlots"
	fieldMapCount  = "count"

	fieldSetSlots     = "_slots"
	fieldSetCount     = "_count"
	fieldSetLastIndex = "_lastIndex"

	fieldDictEntries = "entries"
	fieldDictCount   = "count"

	fieldHashCode = "hashCode"
	fieldKey      = "key"
	fieldValue    = "value"
)

type arrayList struct {
	items graph.Ref
	size  int
}

// ArrayList opens ref as an array-list.
func ArrayList(ref graph.Ref) Container {
	if !ref.Present() {
		return empty{}
	}
	return &arrayList{items: ref.Field(fieldListItems), size: size(ref, fieldListSize)}
}

func (l *arrayList) Shape() Shape { return ShapeArrayList }
func (l *arrayList) Len() int     { return l.size }

func (l *arrayList) Values() iter.Seq[graph.Ref] {
	return valuesOf(l.Entries())
}

func (l *arrayList) Entries() iter.Seq2[graph.Ref, graph.Ref] {
	return func(yield func(graph.Ref, graph.Ref) bool) {
		if !l.items.Present() {
			return
		}
		for i := 0; i < l.size; i++ {
			item := l.items.Index(i)
			if item.Broken() {
				return
			}
			if !item.Present() {
				continue
			}
			if !yield(graph.Ref{}, item) {
				return
			}
		}
	}
}

type slotMap struct {
	keys   graph.Ref
	values graph.Ref
	count  int
}

// SlotMap opens ref as a slot-map.
func SlotMap(ref graph.Ref) Container {
	if !ref.Present() {
		return empty{}
	}
	return &slotMap{
		keys:   ref.Field(fieldMapKeys),
		values: ref.Field(fieldMapValues),
		count:  size(ref, fieldMapCount),
	}
}

func (m *slotMap) Shape() Shape { return ShapeSlotMap }
func (m *slotMap) Len() int     { return m.count }

func (m *slotMap) Values() iter.Seq[graph.Ref] {
	return valuesOf(m.Entries())
}

func (m *slotMap) Entries() iter.Seq2[graph.Ref, graph.Ref] {
	return func(yield func(graph.Ref, graph.Ref) bool) {
		if !m.values.Present() {
			return
		}
		for i := 0; i < m.count; i++ {
			value := m.values.Index(i)
			if value.Broken() {
				return
			}
			if !value.Present() {
				continue
			}
			key := m.keys.Index(i)
			if key.Broken() {
				return
			}
			if !yield(key, value) {
				return
			}
		}
	}
}

type slotSet struct {
	slots graph.Ref
	count int
	limit int
}

// SlotSet opens ref as a slot-set.
func SlotSet(ref graph.Ref) Container {
	if !ref.Present() {
		return empty{}
	}
	s := &slotSet{slots: ref.Field(fieldSetSlots), count: size(ref, fieldSetCount)}
	if last, ok := ref.Field(fieldSetLastIndex).AsInt(); ok && last >= 0 {
		s.limit = last
	} else if n, ok := s.slots.Len(); ok {
		s.limit = n
	}
	return s
}

func (s *slotSet) Shape() Shape { return ShapeSlotSet }
func (s *slotSet) Len() int     { return s.count }

func (s *slotSet) Values() iter.Seq[graph.Ref] {
	return valuesOf(s.Entries())
}

func (s *slotSet) Entries() iter.Seq2[graph.Ref, graph.Ref] {
	return func(yield func(graph.Ref, graph.Ref) bool) {
		if !s.slots.Present() {
			return
		}
		seen := 0
		for i := 0; i < s.limit && seen < s.count; i++ {
			slot := s.slots.Index(i)
			if slot.Broken() {
				return
			}
			if tombstoned(slot) {
				continue
			}
			value := slot.Field(fieldValue)
			if !value.Present() {
				continue
			}
			seen++
			if !yield(graph.Ref{}, value) {
				return
			}
		}
	}
}

type dictionary struct {
	entries graph.Ref
	count   int
}

// Dictionary opens ref as a bucket-dictionary.
func Dictionary(ref graph.Ref) Container {
	if !ref.Present() {
		return empty{}
	}
	return &dictionary{entries: ref.Field(fieldDictEntries), count: size(ref, fieldDictCount)}
}

func (d *dictionary) Shape() Shape { return ShapeDictionary }
func (d *dictionary) Len() int     { return d.count }

func (d *dictionary) Values() iter.Seq[graph.Ref] {
	return valuesOf(d.Entries())
}

func (d *dictionary) Entries() iter.Seq2[graph.Ref, graph.Ref] {
	return func(yield func(graph.Ref, graph.Ref) bool) {
		if !d.entries.Present() {
			return
		}
		for i := 0; i < d.count; i++ {
			entry := d.entries.Index(i)
			if entry.Broken() {
				return
			}
			if tombstoned(entry) {
				continue
			}
			if !yield(entry.Field(fieldKey), entry.Field(fieldValue)) {
				return
			}
		}
	}
}

// tombstoned reports whether a set slot or dictionary entry is free.
// Free slots are either absent or carry a negative hash code.
func tombstoned(slot graph.Ref) bool {
	if !slot.Present() {
		return true
	}
	hash, ok := slot.Field(fieldHashCode).AsInt()
	return ok && hash < 0
}
