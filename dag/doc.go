// Package dag provides a declarative stage graph over a shared state
// container with single-writer slots.
//
// Stages declare the slots they read and the slots they write. The graph is
// derived from those declarations and validated at construction: two writers
// for one slot, a read with no producer, and dependency cycles are all
// rejected before anything runs. Execution groups stages into dependency
// levels and runs each level concurrently.
//
// A stage failure is isolated: downstream stages whose required inputs can no
// longer be produced are skipped and recorded in the error ledger, while
// independent branches keep running.
package dag
