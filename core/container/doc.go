// Package container presents the collection encodings found in the remote graph
// through one iteration contract.
//
// Four encodings are recognized:
//   - array-list (List`1): a backing "_items" array bounded by the logical "_size".
//     The backing array is usually longer than the list; only "_size" counts.
//   - slot-map (Map`2): parallel "keySlots"/"valueSlots" arrays plus "count".
//   - slot-set (HashSet`1): a "_slots" array whose live slots carry a "value";
//     "_count" live elements, free slots are tombstoned.
//   - bucket-dictionary (Dictionary`2): an "entries" array of key/value nodes plus "count".
//
// The shape is decided once per node, from the runtime type name when the
// accessor reports one and from a field probe otherwise. Callers then use
// Values or Entries without caring about the encoding:
//
//	for card := range container.ArrayList(cards).Values() {
//	    ...
//	}
//
// Containers never fail. An absent container, or one whose size cannot be read,
// is empty. Absent elements are skipped. A torn read (an index past the
// physical array, reported by the accessor as graph.ErrReadRace) ends the
// iteration of that container only.
package container
