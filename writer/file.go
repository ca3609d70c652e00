package writer

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/picolog/picolog/core"
)

// File writes rendered entries to a log file with size-based rotation
type File struct {
	out   io.WriteCloser
	mu    sync.Mutex
	stats Stats
}

// FileConfig holds configuration for the file writer
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// MaxSizeMB is the maximum size in megabytes before rotation (0 = 100)
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// MaxAgeDays is the maximum age in days before old files are deleted (0 = keep all)
	MaxAgeDays int
	// Compress enables gzip compression of rotated files
	Compress bool
}

// NewFile creates a new file writer
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	return &File{
		out: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}, nil
}

// Write outputs one rendered entry
func (f *File) Write(_ core.Level, entry string) error {
	f.mu.Lock()
	_, err := io.WriteString(f.out, entry)
	f.mu.Unlock()

	if err != nil {
		f.stats.IncrementFailed()
		return errors.Wrap(err, "write log entry")
	}
	f.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (f *File) Stats() Snapshot {
	return f.stats.GetSnapshot()
}

// Close closes the underlying file
func (f *File) Close() error {
	return f.out.Close()
}
