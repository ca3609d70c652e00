// Package core defines the shared types used across the picolog facility.
//
// It provides the Level type for severity filtering and the Entry type
// that carries the context of a single log call (timestamp, goroutine,
// caller, resolved message, error) from the dispatcher to the renderer.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. The dispatcher gets an Entry with GetEntry and
// returns it with PutEntry once the sink has consumed the rendered
// text. Entries are never retained past a call, so pooling is safe.
//
// The package also hosts the internal error reporter: the swappable
// function that surfaces formatting and sink failures without going
// through the log pipeline itself.
package core
