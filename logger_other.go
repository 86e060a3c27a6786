//go:build !android

package fadeline

import (
	"log/slog"
	"os"
)

func newPlatformHandler(level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}
