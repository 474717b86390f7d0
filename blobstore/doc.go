// Package blobstore provides storage abstraction for snapshot files.
//
// BlobStore is the interface for reading and writing snapshot blobs.
// Implementations must be safe for concurrent use. The kernel itself
// never touches a BlobStore; stores consume the bytes the snapshot
// package produces.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic Put
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3 with range reads and streaming uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends.
// For cloud backends, implement ReadRange for efficient partial reads;
// snapshot loading reads the footer and directory before the payload.
package blobstore
