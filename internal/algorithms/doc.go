// Package algorithms implements the five supported sorting algorithms as
// instrumented routines writing through a [trace.Recorder].
//
// The set is closed by design: a map from name to function, resolved with
// [Get], never runtime plugin registration. Each algorithm lives in its own
// file and documents its step-emission and stability contract:
//
//	bubble     O(n²)  stable     early exit after a no-swap pass
//	selection  O(n²)  unstable   one swap per pass at most
//	insertion  O(n²)  stable     adjacent compare-and-swap shifts
//	merge      O(n log n) stable compare + merge write-back steps
//	quick      O(n log n) unstable pivot + compare + swap steps, Lomuto
//
// All routines are deterministic for a fixed input sequence.
package algorithms
