// Package content holds the deterministic content logic of the pipeline:
// reusable content blocks derived from a product record, the question
// taxonomy, and ingredient comparison. Everything here is a pure function of
// its inputs so repeated runs produce identical output.
package content
