// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import "math"

// Handle is a native window description for one windowing system.
// The set of implementations is closed: AppKitHandle, UIKitHandle,
// X11Handle, WaylandHandle, Win32Handle and AndroidHandle.
//
// All references are native pointers or identifiers owned by the platform.
// They must stay valid for the duration of the call that consumes the
// handle; a handle naming a destroyed window is undefined behaviour.
type Handle interface {
	// System names the windowing system, e.g. "x11" or "appkit".
	System() string

	isHandle()
}

// AppKitHandle is a macOS window. Either Window or View may be zero, in
// which case the other is used to find the content view. Layer is set when
// the view already hosts a CAMetalLayer; that layer is then used as is and
// the view is not touched.
type AppKitHandle struct {
	Window uintptr // NSWindow*
	View   uintptr // NSView*
	Layer  uintptr // CAMetalLayer*, optional
}

// UIKitHandle is an iOS window. Either reference may be zero, in which
// case the other is used to find the view.
type UIKitHandle struct {
	Window uintptr // UIWindow*
	View   uintptr // UIView*
}

// X11Handle is an X11 window reachable through Xlib, XCB or both.
// The XCB transport uses the low 32 bits of Window.
type X11Handle struct {
	Window     uint64  // XID
	Display    uintptr // Xlib Display*
	Connection uintptr // xcb_connection_t*
}

// WaylandHandle is a Wayland surface on a display connection.
type WaylandHandle struct {
	Display uintptr // wl_display*
	Surface uintptr // wl_surface*
}

// Win32Handle is a Windows window.
type Win32Handle struct {
	Hinstance uintptr // HINSTANCE
	Hwnd      uintptr // HWND
}

// AndroidHandle is an Android native window.
type AndroidHandle struct {
	Window uintptr // ANativeWindow*
}

func (AppKitHandle) System() string  { return "appkit" }
func (UIKitHandle) System() string   { return "uikit" }
func (X11Handle) System() string     { return "x11" }
func (WaylandHandle) System() string { return "wayland" }
func (Win32Handle) System() string   { return "win32" }
func (AndroidHandle) System() string { return "android" }

func (AppKitHandle) isHandle()  {}
func (UIKitHandle) isHandle()   {}
func (X11Handle) isHandle()     {}
func (WaylandHandle) isHandle() {}
func (Win32Handle) isHandle()   {}
func (AndroidHandle) isHandle() {}

// hasXlib reports whether the Xlib transport is populated.
func (h X11Handle) hasXlib() bool {
	return h.Window != 0 && h.Display != 0
}

// hasXcb reports whether the XCB transport is populated. XCB window ids
// are 32 bit, so wider values are rejected rather than truncated.
func (h X11Handle) hasXcb() bool {
	return h.Window != 0 && h.Window <= math.MaxUint32 && h.Connection != 0
}
