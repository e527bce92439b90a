// Package steward confines file and directory mutation to a single root
// directory.
//
// A Steward is bound to one absolute root for its lifetime. Every path handed
// to it is resolved against that root and checked for inclusion before any
// storage call is made; a path that escapes the root (for example
// "../sibling") fails with a JURISDICTION_VIOLATION error and nothing is
// touched.
//
// # Operations
//
// The primitive operations are:
//
//   - CreateDirectory and CreateFile / CreateFileFrom
//   - Copy (file or recursive directory)
//   - Cut (copy followed by removal of the source)
//   - Remove (file or recursive directory)
//   - Rename (same parent directory only)
//   - Inspect and List for traversal
//
// Behavior is tuned per call with OpOption values such as WithCover,
// WithForce and WithStream.
//
// # Bulk execution
//
// RunSequential executes an ordered list of Task values one at a time and
// stops at the first failure. The returned error keeps the failing task's
// code and cause, and its message names the failing index:
//
//	err := s.RunSequential(ctx, []steward.Task{
//	    {Op: steward.OpCreate, Path: "build", Kind: steward.KindDirectory},
//	    {Op: steward.OpRemove, Path: "stale", Options: []steward.OpOption{steward.WithForce(false)}},
//	})
//	// [NOT_FOUND] "/srv/ws/stale" does not exist (at tasks[1])
//
// Completed tasks are never rolled back.
//
// # Non-blocking execution
//
// Start and StartSequential run the same operations on a separate goroutine
// and return a *Pending handle. Tasks inside one StartSequential call still
// run strictly in order.
//
// # Errors
//
// All errors carry a code from the errors subpackage:
//
//	if errors.IsCode(err, errors.CodeJurisdiction) {
//	    // path was outside the root
//	}
package steward
