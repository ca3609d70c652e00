// Package writer provides the output sinks for rendered log entries.
//
// A Writer receives one fully rendered entry line per call, together
// with its severity level, and writes it synchronously. Delivery is
// best-effort: a failing write is reported to the caller exactly once
// and never retried.
//
// Sinks can be constructed from specification strings like "console"
// or "file:app.log" through an explicit registry. Host applications
// extend the registry with Register at startup; there is no dynamic
// loading of writer implementations.
package writer
