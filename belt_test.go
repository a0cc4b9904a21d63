package avlogbridge

import (
	"context"
	"testing"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avlogbridge/ffmpeg"
	"github.com/xaionaro-go/avlogbridge/gpac"
	"github.com/xaionaro-go/avlogbridge/logger"
)

func TestLevelFromFFmpeg(t *testing.T) {
	for ffmpegLevel, beltLevel := range map[ffmpeg.LogLevel]logger.Level{
		ffmpeg.LogLevelQuiet:   logger.LevelUndefined,
		ffmpeg.LogLevelPanic:   logger.LevelPanic,
		ffmpeg.LogLevelFatal:   logger.LevelFatal,
		ffmpeg.LogLevelError:   logger.LevelError,
		ffmpeg.LogLevelWarning: logger.LevelWarning,
		ffmpeg.LogLevelInfo:    logger.LevelInfo,
		ffmpeg.LogLevelVerbose: logger.LevelDebug,
		ffmpeg.LogLevelDebug:   logger.LevelTrace,
		ffmpeg.LogLevelTrace:   logger.LevelTrace,
		ffmpeg.LogLevel(1000):  logger.LevelError,
	} {
		require.Equal(t, beltLevel, LevelFromFFmpeg(ffmpegLevel), ffmpegLevel.String())
	}
}

func TestLevelFromGPAC(t *testing.T) {
	for gpacLevel, beltLevel := range map[gpac.LogLevel]logger.Level{
		gpac.LogLevelQuiet:   logger.LevelUndefined,
		gpac.LogLevelError:   logger.LevelError,
		gpac.LogLevelWarning: logger.LevelWarning,
		gpac.LogLevelInfo:    logger.LevelInfo,
		gpac.LogLevelDebug:   logger.LevelDebug,
		gpac.LogLevel(1000):  logger.LevelError,
	} {
		require.Equal(t, beltLevel, LevelFromGPAC(gpacLevel), gpacLevel.String())
	}
}

func TestClampLevel(t *testing.T) {
	require.Equal(t, logger.LevelError, clampLevel(logger.LevelFatal))
	require.Equal(t, logger.LevelError, clampLevel(logger.LevelPanic))
	require.Equal(t, logger.LevelWarning, clampLevel(logger.LevelWarning))
	require.Equal(t, logger.LevelTrace, clampLevel(logger.LevelTrace))
}

func testContext(t *testing.T) context.Context {
	l := logrus.Default().WithLevel(logger.LevelTrace)
	ctx := logger.CtxWithLogger(context.Background(), l)
	t.Cleanup(func() { belt.Flush(ctx) })
	return ctx
}

func TestFFmpegToBelt(t *testing.T) {
	callback := FFmpegToBelt(testContext(t))
	for _, level := range []ffmpeg.LogLevel{
		ffmpeg.LogLevelQuiet, ffmpeg.LogLevelPanic, ffmpeg.LogLevelFatal,
		ffmpeg.LogLevelError, ffmpeg.LogLevelWarning, ffmpeg.LogLevelInfo,
		ffmpeg.LogLevelVerbose, ffmpeg.LogLevelDebug, ffmpeg.LogLevelTrace,
	} {
		callback(level, "message at "+level.String()+"\n")
	}
}

func TestGPACToBelt(t *testing.T) {
	callback := GPACToBelt(testContext(t))
	for _, level := range []gpac.LogLevel{
		gpac.LogLevelQuiet, gpac.LogLevelError, gpac.LogLevelWarning,
		gpac.LogLevelInfo, gpac.LogLevelDebug,
	} {
		callback(level, gpac.LogToolContainer, "message at "+level.String()+"\n")
	}
}
