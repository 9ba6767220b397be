package build

import (
	"io"
	"log/slog"
	"os"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
)

// Loggers owns the process-wide log handler. Output always goes to
// stderr; a rotating debug log file can be layered on top so short
// lived hook invocations leave a trail that can be inspected later.
type Loggers struct {
	handler btclogv2.Handler
	file    *RotatingLogWriter
}

// NewLoggers sets up logging for the process. When logDir is non-empty
// a rotating log file is created there and receives a copy of every
// record. The debug flag lowers the level from Info to Debug.
func NewLoggers(logDir string, debug bool) (*Loggers, error) {
	writers := []io.Writer{os.Stderr}

	var file *RotatingLogWriter
	if logDir != "" {
		var err error
		file, err = NewRotatingLogWriter(logDir)
		if err != nil {
			return nil, err
		}

		writers = append(writers, file)
	}

	handler := btclogv2.NewDefaultHandler(io.MultiWriter(writers...))

	level := btclog.LevelInfo
	if debug {
		level = btclog.LevelDebug
	}
	handler.SetLevel(level)

	return &Loggers{
		handler: handler,
		file:    file,
	}, nil
}

// DiscardLoggers returns loggers that drop every record.
func DiscardLoggers() *Loggers {
	handler := btclogv2.NewDefaultHandler(io.Discard)
	handler.SetLevel(btclog.LevelOff)

	return &Loggers{handler: handler}
}

// Slog returns a structured logger tagged with the given subsystem.
func (l *Loggers) Slog(tag string) *slog.Logger {
	return slog.New(l.handler.SubSystem(tag))
}

// Close flushes and closes the rotating log file, if one was set up.
func (l *Loggers) Close() error {
	if l.file != nil {
		return l.file.Close()
	}

	return nil
}
