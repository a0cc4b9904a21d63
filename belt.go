// Package avlogbridge adapts the C logging callbacks of FFmpeg
// (libavutil) and GPAC into Go handlers, and optionally routes the
// records into go-belt loggers.
package avlogbridge

import (
	"context"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/xaionaro-go/avlogbridge/ffmpeg"
	"github.com/xaionaro-go/avlogbridge/gpac"
	"github.com/xaionaro-go/avlogbridge/logger"
)

// LevelFromFFmpeg converts a libavutil log level to a go-belt one.
//
// The scales do not match one-to-one: libavutil's "verbose" is closer
// to a debug level, and its "debug" is closer to a trace level.
// LogLevelQuiet maps to LevelUndefined, meaning the record should not
// be logged at all; an unknown input maps to LevelError so that
// nothing gets lost silently.
func LevelFromFFmpeg(level ffmpeg.LogLevel) logger.Level {
	switch level {
	case ffmpeg.LogLevelQuiet:
		return logger.LevelUndefined
	case ffmpeg.LogLevelPanic:
		return logger.LevelPanic
	case ffmpeg.LogLevelFatal:
		return logger.LevelFatal
	case ffmpeg.LogLevelError:
		return logger.LevelError
	case ffmpeg.LogLevelWarning:
		return logger.LevelWarning
	case ffmpeg.LogLevelInfo:
		return logger.LevelInfo
	case ffmpeg.LogLevelVerbose:
		return logger.LevelDebug
	case ffmpeg.LogLevelDebug, ffmpeg.LogLevelTrace:
		return logger.LevelTrace
	default:
		return logger.LevelError
	}
}

// LevelFromGPAC converts a GPAC log level to a go-belt one.
// Same conventions as LevelFromFFmpeg.
func LevelFromGPAC(level gpac.LogLevel) logger.Level {
	switch level {
	case gpac.LogLevelQuiet:
		return logger.LevelUndefined
	case gpac.LogLevelError:
		return logger.LevelError
	case gpac.LogLevelWarning:
		return logger.LevelWarning
	case gpac.LogLevelInfo:
		return logger.LevelInfo
	case gpac.LogLevelDebug:
		return logger.LevelDebug
	default:
		return logger.LevelError
	}
}

// clampLevel lowers Fatal and Panic to Error: a logger implementation
// is allowed to os.Exit on Fatalf and panic on Panicf, and neither is
// acceptable inside a logging callback that may run on a C thread.
func clampLevel(level logger.Level) logger.Level {
	if level == logger.LevelFatal || level == logger.LevelPanic {
		return logger.LevelError
	}
	return level
}

// FFmpegToBelt returns a callback that routes libavutil log records
// into the logger carried by ctx:
//
//	ffmpeg.SetLogCallback(ctx, avlogbridge.FFmpegToBelt(ctx))
func FFmpegToBelt(ctx context.Context) ffmpeg.Callback {
	return func(level ffmpeg.LogLevel, msg string) {
		beltLevel := LevelFromFFmpeg(level)
		if beltLevel == logger.LevelUndefined {
			return
		}
		// libavutil terminates records with '\n'; the belt logger
		// frames messages itself.
		logger.Logf(ctx, clampLevel(beltLevel), "%s", strings.TrimSpace(msg))
	}
}

// GPACToBelt returns a callback that routes GPAC log records into the
// logger carried by ctx, tagging each record with its tool:
//
//	gpac.SetLogCallback(ctx, avlogbridge.GPACToBelt(ctx))
func GPACToBelt(ctx context.Context) gpac.Callback {
	return func(level gpac.LogLevel, tool gpac.LogTool, msg string) {
		beltLevel := LevelFromGPAC(level)
		if beltLevel == logger.LevelUndefined {
			return
		}
		ctx := belt.WithField(ctx, "tool", tool.String())
		logger.Logf(ctx, clampLevel(beltLevel), "%s", strings.TrimSpace(msg))
	}
}
