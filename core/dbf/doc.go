// Package dbf provides the process-wide translation between card ids
// ("CS2_001") and their dense numeric dbf ids.
//
// The table is read from the client's static card database
// (GameDbf.Card.m_records) the first time a lookup needs it, and kept for the
// lifetime of the Table. There is no invalidation: the card database does not
// change while the client runs.
//
// # Population
//
// Population builds both directions in a single pass into private maps and
// publishes them under a write lock, so readers never see a partial table.
// Concurrent first lookups share one population via singleflight. When the
// card database is not loaded yet (zero records), or the pass was cut short by
// a torn read, the table stays empty, every lookup returns its default, and
// the next lookup tries again.
//
// # Usage
//
//	table := dbf.NewTable(image, logger)
//	id := table.DbfID("CS2_001")       // 0 when unknown
//	cardID, ok := table.CardID(1063)   // "", false when unknown
package dbf
