package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/coreos/go-systemd/v22/journal"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel converts a LogLevel to the equivalent slog.Level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l LogLevel) journalPriority() journal.Priority {
	switch l {
	case LevelDebug:
		return journal.PriDebug
	case LevelWarn:
		return journal.PriWarning
	case LevelError:
		return journal.PriErr
	default:
		return journal.PriInfo
	}
}

var (
	defaultLogger *slog.Logger
	minLevel      LogLevel
	useJournal    bool
)

// Init initializes the logging system. It should be called once at
// process startup, before any commands run. Output normally goes to the
// given writer (stderr); when stderr is connected to the systemd journal
// the entries are sent through the journal socket instead.
func Init(filterLevel LogLevel, output io.Writer) {
	minLevel = filterLevel
	useJournal = journalStream()

	opts := &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	}
	defaultLogger = slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(defaultLogger)
}

// journalStream reports whether stderr was handed to us by systemd.
// systemd sets JOURNAL_STREAM to "<dev>:<inode>" of the journal socket.
func journalStream() bool {
	if os.Getenv("JOURNAL_STREAM") == "" {
		return false
	}
	ok, err := journal.StderrIsJournalStream()
	if err != nil {
		return false
	}
	return ok
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if defaultLogger == nil || level < minLevel {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if useJournal {
		vars := map[string]string{"SUBSYSTEM": subsystem}
		if err != nil {
			vars["ERROR"] = err.Error()
		}
		if sendErr := journal.Send(msg, level.journalPriority(), vars); sendErr == nil {
			return
		}
		// Journal unavailable after all; fall through to the text handler.
	}

	var attrs []slog.Attr
	attrs = append(attrs, slog.String("subsystem", subsystem))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
