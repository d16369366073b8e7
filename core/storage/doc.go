// Package storage provides read access to the bucket holding captured graph dumps.
//
// Dumps are YAML/JSON serializations of a client's object graph (see
// core/graph/memgraph). Capturing them is the acquisition layer's job; this
// package only lists and fetches them so extractions can be replayed.
//
// # Client Interface
//
// The Client interface wraps the subset of the MinIO client that the tool uses:
//   - BucketExists
//   - GetObject
//   - ListObjects
//
// A mock implementation for tests lives in the mocks sub-package.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	names, err := storage.ListDumps(ctx, client, cfg.Storage.Bucket, "dumps/")
package storage
