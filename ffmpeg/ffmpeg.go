// Package ffmpeg routes libavutil's variadic logging callback into a
// fixed-arity Go handler.
//
// libavutil may invoke the callback concurrently from any of its
// threads and from under its own locks, so the rendering happens on
// the C side into a per-call stack buffer (see logshim.c); the Go side
// only ever sees the already-rendered message.
package ffmpeg

/*
#cgo pkg-config: libavutil
#include <libavutil/log.h>
*/
import "C"

import (
	"fmt"
)

// LogLevel is libavutil's log severity (the AV_LOG_* values).
type LogLevel int

const (
	LogLevelQuiet   = LogLevel(C.AV_LOG_QUIET)
	LogLevelPanic   = LogLevel(C.AV_LOG_PANIC)
	LogLevelFatal   = LogLevel(C.AV_LOG_FATAL)
	LogLevelError   = LogLevel(C.AV_LOG_ERROR)
	LogLevelWarning = LogLevel(C.AV_LOG_WARNING)
	LogLevelInfo    = LogLevel(C.AV_LOG_INFO)
	LogLevelVerbose = LogLevel(C.AV_LOG_VERBOSE)
	LogLevelDebug   = LogLevel(C.AV_LOG_DEBUG)
	LogLevelTrace   = LogLevel(C.AV_LOG_TRACE)
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelQuiet:
		return "quiet"
	case LogLevelPanic:
		return "panic"
	case LogLevelFatal:
		return "fatal"
	case LogLevelError:
		return "error"
	case LogLevelWarning:
		return "warning"
	case LogLevelInfo:
		return "info"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelDebug:
		return "debug"
	case LogLevelTrace:
		return "trace"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// SetLevel sets libavutil's own log level (av_log_set_level). It only
// affects the default callback; a callback registered through
// SetLogCallback receives every record regardless of this value.
func SetLevel(level LogLevel) {
	C.av_log_set_level(C.int(level))
}

// GetLevel returns libavutil's current log level (av_log_get_level).
func GetLevel() LogLevel {
	return LogLevel(C.av_log_get_level())
}
