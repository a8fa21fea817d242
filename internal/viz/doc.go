// Package viz renders trace playback in the terminal.
//
// The package implements the presentation layer on top of the Bubble Tea
// framework:
//
//   - [Model]: plays a single trace as an animated bar chart, driven by a
//     playback controller ticked from the render loop
//   - [App]: interactive shell with algorithm menu and run configuration
//
// Timing lives in the playback controller; the TUI only forwards frame
// ticks and key presses, so the same controller works under any cadence.
//
// # Key Bindings
//
//	Space - Play/Pause
//	←/→   - Step backward/forward
//	+/-   - Playback speed
//	R     - New random input
//	Tab   - Next algorithm
//	?     - Help overlay
package viz
