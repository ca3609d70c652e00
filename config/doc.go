// Package config loads logger settings from YAML or JSON files and
// from PICOLOG_* environment variables.
//
// Recognized settings are level, format, locale, stacktrace and
// writer. Environment variables override file values. Loading is
// optional; the logger works with built-in defaults when no
// configuration is ever applied.
package config
