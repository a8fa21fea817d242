// Package playback drives a cursor over a materialized trace.
//
// The Controller is an explicit state machine (Idle, Ready, Playing,
// Paused, Finished) advanced by discrete Tick calls from the hosting
// presentation layer. Timing policy lives entirely here: the delay between
// automatic advances is configuration, never derived from algorithm cost,
// and the UI toolkit only supplies the tick cadence.
//
// Out-of-range movement clamps instead of failing; steps are atomic units
// for display, so pausing or reloading mid-playback is always immediate
// and lossless.
package playback
