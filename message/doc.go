// Package message implements positional message templates.
//
// A template contains placeholders of the form {index[,type[,subformat]]}
// that are resolved against the arguments of the log call. Single-quote
// pairs protect literal text, a doubled quote emits one quote, and an
// index past the argument list leaves the placeholder unexpanded.
//
// Two qualifiers are supported: "number" formats a numeric argument
// with locale-sensitive grouping and decimal separators, optionally
// shaped by a DecimalFormat-style sub-pattern, and "choice" selects
// one of several |-delimited alternatives by comparing the argument to
// ascending limits. Choice alternatives may contain further
// placeholders, resolved recursively.
//
// The formatter never fails past its own boundary: a malformed
// sub-pattern or an argument of the wrong type returns the original
// message unchanged and reports a single warning.
package message
