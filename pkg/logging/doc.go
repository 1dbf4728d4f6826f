// Package logging provides structured logging for the pro client.
//
// It is a thin wrapper over Go's standard slog package. Every log entry
// carries a subsystem identifier so that invocations can be filtered by
// component (Catalog, State, Engine, Contract, CLI).
//
// Log output always goes to stderr: stdout is reserved for the
// machine-readable operation result. When the process is started by
// systemd (a timer-driven refresh, for example) entries are written to
// the journal instead of the stderr text handler, so that journalctl
// shows properly prioritised records rather than a double-timestamped
// text stream.
//
// Usage:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Engine", "resolved %d services", n)
//	logging.Error("Contract", err, "attach request failed")
package logging
