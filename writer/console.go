package writer

import (
	"io"
	"os"
	"sync"

	"github.com/picolog/picolog/core"
)

// Console writes rendered entries to the standard streams: Warning
// and Error entries go to stderr, everything below to stdout.
type Console struct {
	out   io.Writer
	err   io.Writer
	mu    sync.Mutex
	stats Stats
}

// ConsoleConfig holds configuration for the console writer
type ConsoleConfig struct {
	// Out receives Trace, Debug and Info entries (default: os.Stdout)
	Out io.Writer
	// Err receives Warning and Error entries (default: os.Stderr)
	Err io.Writer
}

// NewConsole creates a new console writer
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	return &Console{out: cfg.Out, err: cfg.Err}
}

// Write outputs one rendered entry
func (c *Console) Write(level core.Level, entry string) error {
	target := c.out
	if level >= core.WarningLevel {
		target = c.err
	}

	c.mu.Lock()
	_, err := io.WriteString(target, entry)
	c.mu.Unlock()

	if err != nil {
		c.stats.IncrementFailed()
		return err
	}
	c.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}

// Close closes the writer
func (c *Console) Close() error {
	return nil
}
