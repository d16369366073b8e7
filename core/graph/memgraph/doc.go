// Package memgraph is an in-memory implementation of the graph contract.
//
// It backs the package tests and the command line tool, which replays graph
// dumps captured from a live client. A dump is a YAML (or JSON) document with
// three top-level sections:
//
//	classes:
//	  CollectionManager:
//	    s_instance:
//	      m_collectibleCards:
//	        $type: List`1
//	        _size: 1
//	        _items:
//	          - m_EntityDef: {m_cardIdInternal: CS2_001}
//	            <OwnedCount>k__BackingField: 2
//	            m_PremiumType: 0
//	services:
//	  NetCache: {...}
//	caches:
//	  NetCacheCardBacks: {...}
//
// Mappings are objects (the optional "$type" key carries the runtime type
// name), sequences are arrays and everything else is a terminal value. A null
// value is an absent node.
//
// Dumps can be read from a local file or from the dump bucket (see core/storage).
// Tests inject failures with Fault values, which turn the read that reaches
// them into an accessor error.
package memgraph
