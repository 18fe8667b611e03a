// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build (linux && !android) || freebsd || openbsd

package giowin

/*
#cgo LDFLAGS: -lX11 -lX11-xcb
#include <stdint.h>
#include <X11/Xlib-xcb.h>

static uintptr_t giowinXcbConnection(uintptr_t dpy) {
	return (uintptr_t)XGetXCBConnection((Display *)dpy);
}
*/
import "C"

import (
	"gioui.org/app"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func viewHandle(e app.ViewEvent) (ashwin.Handle, error) {
	if e.Display == nil || e.Window == 0 {
		return nil, unsupported("view event has no x11 window")
	}
	display := uintptr(e.Display)
	connection := uintptr(C.giowinXcbConnection(C.uintptr_t(display)))
	return x11Handle(uint64(e.Window), display, connection), nil
}

func x11Handle(window uint64, display, connection uintptr) ashwin.X11Handle {
	return ashwin.X11Handle{
		Window:     window,
		Display:    display,
		Connection: connection,
	}
}
