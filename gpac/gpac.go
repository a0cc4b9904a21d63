// Package gpac routes GPAC's variadic logging callback into a
// fixed-arity Go handler.
//
// Same discipline as package ffmpeg: GPAC may log concurrently from
// its own threads, so each record is rendered on the C side into a
// per-call stack buffer (see logshim.c) and the Go side receives only
// the rendered message.
package gpac

/*
#cgo pkg-config: gpac
#include <gpac/tools.h>
*/
import "C"

import (
	"fmt"
)

// LogLevel is GPAC's log severity (the GF_LOG_* level values).
type LogLevel int

const (
	LogLevelQuiet   = LogLevel(C.GF_LOG_QUIET)
	LogLevelError   = LogLevel(C.GF_LOG_ERROR)
	LogLevelWarning = LogLevel(C.GF_LOG_WARNING)
	LogLevelInfo    = LogLevel(C.GF_LOG_INFO)
	LogLevelDebug   = LogLevel(C.GF_LOG_DEBUG)
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelQuiet:
		return "quiet"
	case LogLevelError:
		return "error"
	case LogLevelWarning:
		return "warning"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// LogTool is GPAC's subsystem tag accompanying each log record
// (the GF_LOG_* tool values).
type LogTool int

const (
	LogToolCore      = LogTool(C.GF_LOG_CORE)
	LogToolCoding    = LogTool(C.GF_LOG_CODING)
	LogToolContainer = LogTool(C.GF_LOG_CONTAINER)
	LogToolNetwork   = LogTool(C.GF_LOG_NETWORK)
	LogToolCodec     = LogTool(C.GF_LOG_CODEC)
	LogToolParser    = LogTool(C.GF_LOG_PARSER)
	LogToolMedia     = LogTool(C.GF_LOG_MEDIA)
	LogToolScene     = LogTool(C.GF_LOG_SCENE)
	LogToolScript    = LogTool(C.GF_LOG_SCRIPT)
	LogToolAudio     = LogTool(C.GF_LOG_AUDIO)
	LogToolAll       = LogTool(C.GF_LOG_ALL)
)

func (t LogTool) String() string {
	switch t {
	case LogToolCore:
		return "core"
	case LogToolCoding:
		return "coding"
	case LogToolContainer:
		return "container"
	case LogToolNetwork:
		return "network"
	case LogToolCodec:
		return "codec"
	case LogToolParser:
		return "parser"
	case LogToolMedia:
		return "media"
	case LogToolScene:
		return "scene"
	case LogToolScript:
		return "script"
	case LogToolAudio:
		return "audio"
	case LogToolAll:
		return "all"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// SetToolLevel sets the log level of one tool (gf_log_set_tool_level);
// use LogToolAll to set all of them at once. GPAC filters records
// before invoking the callback, so a registered callback only receives
// what the per-tool levels let through.
func SetToolLevel(tool LogTool, level LogLevel) {
	C.gf_log_set_tool_level(C.GF_LOG_Tool(tool), C.GF_LOG_Level(level))
}
