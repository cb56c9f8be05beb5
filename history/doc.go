// Package history is the ordered step log of a run: (message, snapshot)
// pairs with a cursor for back/forward/jump navigation.
//
// The log is append-only; Clear is the only operation that shrinks it.
// Navigation moves the cursor and returns the step now under it. It never
// touches the snapshots themselves, which are immutable anyway.
//
// A Store is safe for concurrent use.
package history
