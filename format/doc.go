// Package format compiles layout patterns and renders log entries.
//
// A layout pattern such as "{date} [{thread}] {method}\n{level}: {message}"
// is compiled once into an ordered token sequence; the sequence is
// immutable and replaced wholesale when the pattern changes, so
// renders running concurrently with a reconfiguration always see one
// consistent snapshot. A date token may carry a sub-pattern,
// "{date:yyyy-MM-dd HH:mm:ss}", which is translated into a Go time
// layout at compile time.
//
// Render walks the tokens into a pooled buffer and returns the
// finished line, including the trailing platform line terminator.
package format
