package build

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
)

const (
	// DefaultMaxLogFiles is how many rotated debug log files to keep.
	DefaultMaxLogFiles = 3

	// DefaultMaxLogFileSize is the max debug log size in MB before
	// rotation.
	DefaultMaxLogFileSize = 5

	// DefaultLogFilename is the debug log file name.
	DefaultLogFilename = "claudevoice.log"
)

// RotatingLogWriter is an io.Writer feeding a jrick/logrotate rotator
// through a pipe. Rotated files are gzip-compressed. A hook process is
// short-lived, so the debug log would otherwise grow without bound
// across invocations.
type RotatingLogWriter struct {
	pipe    *io.PipeWriter
	rotator *rotator.Rotator
}

// NewRotatingLogWriter creates a rotating writer for the log file at
// logDir/DefaultLogFilename and starts the rotator goroutine.
func NewRotatingLogWriter(logDir string) (*RotatingLogWriter, error) {
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile := filepath.Join(logDir, DefaultLogFilename)

	// Rotator size is in KB.
	rot, err := rotator.New(
		logFile, int64(DefaultMaxLogFileSize*1024), false,
		DefaultMaxLogFiles,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create file rotator: %w", err)
	}
	rot.SetCompressor(gzip.NewWriter(nil), ".gz")

	pr, pw := io.Pipe()
	go func() {
		if err := rot.Run(pr); err != nil {
			fmt.Fprintf(os.Stderr,
				"failed to run file rotator: %v\n", err,
			)
		}
	}()

	return &RotatingLogWriter{pipe: pw, rotator: rot}, nil
}

// Write feeds the rotator pipe.
func (r *RotatingLogWriter) Write(b []byte) (int, error) {
	return r.pipe.Write(b)
}

// Close flushes and stops the rotator goroutine.
func (r *RotatingLogWriter) Close() error {
	return r.pipe.Close()
}
