// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// MapAnon() creates a read-write anonymous mapping outside the Go heap.
// The block package uses it to obtain one contiguous region per vector
// instance without creating garbage collector pressure. Because the
// garbage collector never scans these regions, callers must only store
// pointer-free data in them.
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with MAP_ANON | MAP_PRIVATE
//   - Windows: Uses VirtualAlloc with MEM_RESERVE | MEM_COMMIT
//
// # Lifecycle
//
// A Mapping stays valid until Close() is called. Close() is idempotent.
// Accessing Bytes() after Close() returns nil.
package mmap
