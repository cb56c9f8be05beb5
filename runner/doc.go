// Package runner paces a search.Stepper through time and records what it
// emits.
//
// A Controller owns at most one active run. Each scheduler fire records one
// step event into a history.Store; the next fire is scheduled after the step
// delay that is current at that moment, so changing the delay mid-run only
// affects steps not yet scheduled. Starting a new run or calling Cancel
// revokes the single pending fire of the old run and bumps the run
// generation, so a fire that slipped past revocation is a no-op.
//
// Scheduling is abstracted behind Scheduler:
//
//   - TimerScheduler runs tasks on one goroutine against the wall clock.
//   - ManualScheduler keeps a virtual clock advanced explicitly by tests.
//
// Both order tasks by (due time, scheduling sequence) in a B-tree, so tasks
// due at the same instant run in the order they were scheduled.
//
// Hooks (OnStep, OnLog, OnFinish) are called without the Controller lock
// held. On a given scheduler they are delivered in emission order.
package runner
