package ffmpeg

/*
#include "logshim.h"
*/
import "C"

import (
	"context"

	"github.com/go-ng/xatomic"
	"github.com/xaionaro-go/avlogbridge/logger"
	"github.com/xaionaro-go/xsync"
)

// Callback receives one rendered log record. The message is a Go copy
// of the rendered text (at most 4095 bytes, see logshim.c), so the
// callback is free to retain it. It must be safe for concurrent use:
// libavutil does not serialize its logging.
type Callback func(level LogLevel, msg string)

var (
	callbackLocker  xsync.Mutex
	currentCallback *Callback
)

//export avlogbridgeFFmpegLog
func avlogbridgeFFmpegLog(level C.int, msg *C.char) {
	callbackPtr := xatomic.LoadPointer(&currentCallback)
	if callbackPtr == nil {
		return
	}
	(*callbackPtr)(LogLevel(level), C.GoString(msg))
}

// SetLogCallback registers callback as the receiver of all libavutil
// log records (av_log_set_callback). It replaces any previously
// registered callback.
func SetLogCallback(ctx context.Context, callback Callback) {
	logger.Debugf(ctx, "SetLogCallback")
	defer logger.Tracef(ctx, "/SetLogCallback")
	callbackLocker.Do(ctx, func() {
		xatomic.StorePointer(&currentCallback, &callback)
		C.avlogbridgeFFmpegLogShimInstall()
	})
}

// UnsetLogCallback restores libavutil's default log callback and
// releases the Go callback.
func UnsetLogCallback(ctx context.Context) {
	logger.Debugf(ctx, "UnsetLogCallback")
	defer logger.Tracef(ctx, "/UnsetLogCallback")
	callbackLocker.Do(ctx, func() {
		C.avlogbridgeFFmpegLogShimUninstall()
		xatomic.StorePointer(&currentCallback, nil)
	})
}
