package writer

import "github.com/picolog/picolog/core"

// Multi fans a rendered entry out to multiple writers
type Multi struct {
	writers []Writer
}

// NewMulti creates a new multi-writer
func NewMulti(writers ...Writer) *Multi {
	return &Multi{writers: writers}
}

// Write outputs the entry to all writers; the last failure wins
func (m *Multi) Write(level core.Level, entry string) error {
	var lastErr error
	for _, w := range m.writers {
		if err := w.Write(level, entry); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all writers
func (m *Multi) Close() error {
	var lastErr error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
