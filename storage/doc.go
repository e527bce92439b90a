// Package storage defines the storage collaborator of the steward: the
// narrow set of file-tree primitives the steward composes into its
// jurisdiction-checked operations.
//
// # Design Philosophy
//
//   - Zero dependencies: only uses the Go standard library
//   - Interface composition: ReadFS, WriteFS and ManageFS compose into Storage
//   - Policy-free: no path validation, no jurisdiction, no recursion policy
//   - Simple outcomes: every call either succeeds or returns a low-level error
//
// # Interface Hierarchy
//
//   - ReadFS: Open, Lstat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, WriteFile, Mkdir, MkdirAll
//   - ManageFS: Remove, RemoveAll, Rename
//
// # Implementations
//
// The go-billy backed implementations live in
// github.com/jmgilman/go/steward/storage/billy (local disk and in-memory).
// Any other implementation can be validated with the conformance suite in
// github.com/jmgilman/go/steward/storage/storagetest:
//
//	func TestMyStorage(t *testing.T) {
//	    storagetest.TestSuite(t, func(t *testing.T) (storage.Storage, string) {
//	        return mystorage.New(), t.TempDir()
//	    })
//	}
package storage
