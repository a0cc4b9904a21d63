package gpac

/*
#include <stdarg.h>
#include <stdlib.h>

#include <gpac/tools.h>

#include "logshim.h"

static void invoke_shim_v(void *cbck, int level, int tool, const char *fmt, ...) {
	va_list args;
	va_start(args, fmt);
	avlogbridgeGPACLogShim(cbck, (GF_LOG_Level)level, (GF_LOG_Tool)tool, fmt, args);
	va_end(args);
}

static void invoke_shim(void *cbck, int level, int tool, const char *fmt) {
	invoke_shim_v(cbck, level, tool, fmt);
}

static void invoke_shim_int(void *cbck, int level, int tool, const char *fmt, int arg) {
	invoke_shim_v(cbck, level, tool, fmt, arg);
}

static void invoke_shim_str(void *cbck, int level, int tool, const char *fmt, const char *arg) {
	invoke_shim_v(cbck, level, tool, fmt, arg);
}

static void invoke_shim_str_int(void *cbck, int level, int tool, const char *fmt, const char *arg0, int arg1) {
	invoke_shim_v(cbck, level, tool, fmt, arg0, arg1);
}

static void emit_gf_log(int level, int tool, const char *msg) {
	gf_log_lt((GF_LOG_Level)level, (GF_LOG_Tool)tool);
	gf_log("%s", msg);
}
*/
import "C"

import (
	"unsafe"
)

// The helpers below feed records through the C shim, the same entry
// point GPAC calls. They exist for the package's tests: Go cannot
// construct a va_list, and cgo cannot call variadic C functions, so
// each supported argument pack gets its own fixed-arity C wrapper.

func invokeShim(cbck unsafe.Pointer, level LogLevel, tool LogTool, format string) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	C.invoke_shim(cbck, C.int(level), C.int(tool), cFormat)
}

func invokeShimInt(cbck unsafe.Pointer, level LogLevel, tool LogTool, format string, arg int) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	C.invoke_shim_int(cbck, C.int(level), C.int(tool), cFormat, C.int(arg))
}

func invokeShimStr(cbck unsafe.Pointer, level LogLevel, tool LogTool, format string, arg string) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	cArg := C.CString(arg)
	defer C.free(unsafe.Pointer(cArg))
	C.invoke_shim_str(cbck, C.int(level), C.int(tool), cFormat, cArg)
}

func invokeShimStrInt(cbck unsafe.Pointer, level LogLevel, tool LogTool, format string, arg0 string, arg1 int) {
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	cArg0 := C.CString(arg0)
	defer C.free(unsafe.Pointer(cArg0))
	C.invoke_shim_str_int(cbck, C.int(level), C.int(tool), cFormat, cArg0, C.int(arg1))
}

// emitGfLog emits a record through gf_log itself, exercising the full
// path GPAC → shim → Go callback.
func emitGfLog(level LogLevel, tool LogTool, msg string) {
	cMsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cMsg))
	C.emit_gf_log(C.int(level), C.int(tool), cMsg)
}
