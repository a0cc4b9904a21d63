package gpac

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
// GPAC does not serialize its logging.
type Callback func(level LogLevel, tool LogTool, msg string)

var (
	callbackLocker  xsync.Mutex
	currentCallback *Callback
)

//export avlogbridgeGPACLog
func avlogbridgeGPACLog(level C.int, tool C.int, msg *C.char) {
	callbackPtr := xatomic.LoadPointer(&currentCallback)
	if callbackPtr == nil {
		return
	}
	(*callbackPtr)(LogLevel(level), LogTool(tool), C.GoString(msg))
}

// SetLogCallback registers callback as the receiver of GPAC log
// records (gf_log_set_callback). It replaces any previously registered
// callback. Remember that GPAC also filters by per-tool level, see
// SetToolLevel.
func SetLogCallback(ctx context.Context, callback Callback) {
	logger.Debugf(ctx, "SetLogCallback")
	defer logger.Tracef(ctx, "/SetLogCallback")
	callbackLocker.Do(ctx, func() {
		xatomic.StorePointer(&currentCallback, &callback)
		C.avlogbridgeGPACLogShimInstall()
	})
}

// UnsetLogCallback restores GPAC's default logging and releases the Go
// callback.
func UnsetLogCallback(ctx context.Context) {
	logger.Debugf(ctx, "UnsetLogCallback")
	defer logger.Tracef(ctx, "/UnsetLogCallback")
	callbackLocker.Do(ctx, func() {
		C.avlogbridgeGPACLogShimUninstall()
		xatomic.StorePointer(&currentCallback, nil)
	})
}
