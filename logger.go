package fadeline

import "log/slog"

// DefaultLogger returns the platform log sink at info level.
func DefaultLogger() *slog.Logger {
	return NewPlatformLogger(slog.LevelInfo)
}

// NewPlatformLogger returns a logger writing to the sink selected at build
// time: the Android system log on android, standard output everywhere else.
func NewPlatformLogger(level slog.Leveler) *slog.Logger {
	return slog.New(newPlatformHandler(level))
}
