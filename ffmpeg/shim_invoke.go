package ffmpeg

/*
#include <stdarg.h>
#include <stdlib.h>

#include <libavutil/log.h>

#include "logshim.h"

static void invoke_shim_v(void *avcl, int level, const char *fmt, ...) {
	va_list args;
	va_start(args, fmt);
	avlogbridgeFFmpegLogShim(avcl, level, fmt, args);
	va_end(args);
}

static void invoke_shim(void *avcl, int level, const char *fmt) {
	invoke_shim_v(avcl, level, fmt);
}

static void invoke_shim_int(void *avcl, int level, const char *fmt, int arg) {
	invoke_shim_v(avcl, level, fmt, arg);
}

static void invoke_shim_str(void *avcl, int level, const char *fmt, const char *arg) {
	invoke_shim_v(avcl, level, fmt, arg);
}

static void invoke_shim_str_int(void *avcl, int level, const char *fmt, const char *arg0, int arg1) {
	invoke_shim_v(avcl, level, fmt, arg0, arg1);
}

static void emit_av_log(void *avcl, int level, const char *msg) {
	av_log(avcl, level, "%s", msg);
}
*/
import "C"

import (
	"unsafe"
)

// The helpers below feed records through the C shim, the same entry
// point libavutil calls. They exist for the package's tests: Go cannot
// construct a va_list, and cgo cannot call variadic C functions, so
// each supported argument pack gets its own fixed-arity C wrapper.

func invokeShim(avcl unsafe.Pointer, level LogLevel, format string) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	C.invoke_shim(avcl, C.int(level), cFormat)
}

func invokeShimInt(avcl unsafe.Pointer, level LogLevel, format string, arg int) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	C.invoke_shim_int(avcl, C.int(level), cFormat, C.int(arg))
}

func invokeShimStr(avcl unsafe.Pointer, level LogLevel, format string, arg string) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	cArg := C.CString(arg)
	defer C.free(unsafe.Pointer(cArg))
	C.invoke_shim_str(avcl, C.int(level), cFormat, cArg)
}

func invokeShimStrInt(avcl unsafe.Pointer, level LogLevel, format string, arg0 string, arg1 int) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	cArg0 := C.CString(arg0)
	defer C.free(unsafe.Pointer(cArg0))
	C.invoke_shim_str_int(avcl, C.int(level), cFormat, cArg0, C.int(arg1))
}

// emitAvLog emits a record through av_log itself, exercising the full
// path libavutil → shim → Go callback.
func emitAvLog(level LogLevel, msg string) {
	cMsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cMsg))
	C.emit_av_log(nil, C.int(level), cMsg)
}
