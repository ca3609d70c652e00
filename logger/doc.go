// Package logger is the public entry point of the picolog facility.
//
// It provides package-level logging functions from Trace to Error,
// each with an Err variant that attaches an error chain, and the
// process-wide configuration surface: severity threshold, layout
// pattern, locale, stack trace depth and the output writer. Every
// setting takes effect for subsequent calls only.
//
// A call below the threshold, or without a configured writer, is a
// no-op that evaluates nothing, including lazy Supplier arguments. An
// enabled call runs synchronously on the calling goroutine: the
// message template is resolved, the compiled layout tokens are
// rendered and the writer is invoked before the call returns. Nothing
// raised inside that path escapes to the caller; failures degrade to
// one fallback ERROR entry.
package logger
