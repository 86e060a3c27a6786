//go:build android

package fadeline

/*
#cgo LDFLAGS: -llog
#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"
)

// logTag is the logcat tag every record is written under.
const logTag = "RENDERER"

// logcatHandler is a slog.Handler writing single-line records to the
// Android system log.
type logcatHandler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

func newPlatformHandler(level slog.Leveler) slog.Handler {
	return &logcatHandler{level: level}
}

func (h *logcatHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *logcatHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s%s=%v", h.prefix, a.Key, a.Value)
		return true
	})

	tag := C.CString(logTag)
	defer C.free(unsafe.Pointer(tag))
	msg := C.CString(b.String())
	defer C.free(unsafe.Pointer(msg))

	C.__android_log_write(priority(r.Level), tag, msg)
	return nil
}

func (h *logcatHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *logcatHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func priority(l slog.Level) C.int {
	switch {
	case l >= slog.LevelError:
		return C.ANDROID_LOG_ERROR
	case l >= slog.LevelWarn:
		return C.ANDROID_LOG_WARN
	case l >= slog.LevelInfo:
		return C.ANDROID_LOG_INFO
	default:
		return C.ANDROID_LOG_DEBUG
	}
}
