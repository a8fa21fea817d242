// Package trace defines the step-trace data model for instrumented sorting.
//
// The package provides the fundamental types shared by the generator and
// playback sides:
//
//   - [Step]: one atomic, loggable algorithm action (compare, swap, pivot,
//     merge write-back, done)
//   - [Trace]: the ordered, finite step sequence for one run, with summary
//     counters
//   - [Recorder]: the append-only builder the algorithms write through
//
// Steps are recorded in the exact temporal order the algorithm performs
// them; that order is part of the contract, since the counters and the
// playback view both derive from it. Every trace ends with a single done
// step whose snapshot is fully sorted, and the Comparisons/Swaps counters
// always equal the number of compare/swap steps.
//
// # Ownership
//
// A Recorder owns its working sequence exclusively during generation. The
// returned Trace is immutable: snapshots are cloned at record time and must
// be treated as read-only by consumers.
package trace
