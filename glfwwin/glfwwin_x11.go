// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build ((linux && !android) || freebsd || openbsd || netbsd || dragonfly) && !wayland

package glfwwin

/*
#cgo LDFLAGS: -lX11 -lX11-xcb
#include <stdint.h>
#include <X11/Xlib-xcb.h>

// The XCB connection underlying an Xlib display, see
// https://xcb.freedesktop.org/MixingCalls/
static uintptr_t glfwwinXcbConnection(uintptr_t dpy) {
	return (uintptr_t)XGetXCBConnection((Display *)dpy);
}
*/
import "C"

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func nativeHandle(w *glfw.Window) (ashwin.Handle, error) {
	display := uintptr(unsafe.Pointer(glfw.GetX11Display()))
	var connection uintptr
	if display != 0 {
		connection = uintptr(C.glfwwinXcbConnection(C.uintptr_t(display)))
	}
	return x11Handle(uint64(w.GetX11Window()), display, connection)
}

// x11Handle carries both transports of one window so that either
// ashwin X11 transport can be chosen.
func x11Handle(window uint64, display, connection uintptr) (ashwin.Handle, error) {
	if window == 0 {
		return nil, missing("X11 window")
	}
	if display == 0 {
		return nil, missing("X11 display")
	}
	return ashwin.X11Handle{
		Window:     window,
		Display:    display,
		Connection: connection,
	}, nil
}
