// Package collection extracts the card collection and its cosmetic side tables.
//
// All reads go through a session.Session. Every operation opens its own read
// scope, folds what it finds into fresh value snapshots and returns them; the
// only thing kept between calls is the session's card id table.
//
// # Operations
//
//   - ReadCollection: one CollectionCard per card id, variant counts routed by premium tag.
//   - ReadCollectionCard: the same fold restricted to one card id.
//   - ReadCollectionSize: the legacy aggregate (owned count plus premium tag per entry).
//   - IsCollectionInitialized: whether the collectible card list has been filled.
//   - ReadCardBacks: owned card backs from the NetCacheCardBacks side-channel cache.
//   - ReadBattlegroundsHeroSkins: owned hero skins joined to their card dbf ids.
//   - ReadDustInfo: crafting values from the NetCacheCardValues side-channel cache.
//   - TranslateCardID / TranslateDbfID: card id <-> dbf id.
//
// # Absent data
//
// Missing roots, containers or fields are never errors: list operations return
// an empty slice and scalar operations their zero value. Only a failure of the
// accessor itself is returned, wrapped once.
package collection
