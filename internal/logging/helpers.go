package logging

import "log/slog"

// Nil-tolerant wrappers. The poller, sessions and lifecycle controller all
// accept an optional logger; routing every call through these keeps the nil
// check out of their hot paths.

// Info logs at info level; a nil logger drops the message.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level; a nil logger drops the message.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level, appending err under the "error" key when set.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
