// Package stacktrace renders error chains as text.
//
// Render prints each link of a chain starting with the error's type
// and its own message, followed by the stack frames recorded by
// github.com/pkg/errors, one per line, bounded by a frame budget. A
// budget of 0 prints type and message only; a negative budget prints
// every frame. When a link is truncated a "..." marker ends the
// output and the remaining causes are dropped; otherwise the next
// cause follows a "Caused by: " marker with a budget of the limit
// plus the frames printed so far.
package stacktrace
