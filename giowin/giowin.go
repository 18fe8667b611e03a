// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

// Package giowin maps Gio view events to ashwin handles.
//
// Gio sends an app.ViewEvent when the native view of a window is created
// and a zero ViewEvent when it goes away. The handles in the event are
// valid until the next ViewEvent, so a surface created from them must be
// destroyed before that. X11 views carry both the Xlib display and its XCB
// connection. On macOS the view already hosts Gio's CAMetalLayer when Gio
// renders with Metal; that layer is reused and the view is left alone.
package giowin

import (
	"fmt"

	"gioui.org/app"
	vk "github.com/tomas-mraz/vulkan"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

// Handle returns the ashwin handle of the view in e. A zero event, or one
// from a platform with no surface variant, fails with
// ashwin.ErrUnsupportedWindow.
func Handle(e app.ViewEvent) (ashwin.Handle, error) {
	return viewHandle(e)
}

// RequiredExtensions returns the instance extensions needed for a surface
// on the view in e.
func RequiredExtensions(e app.ViewEvent, opts ...ashwin.Option) ([2]string, error) {
	h, err := Handle(e)
	if err != nil {
		return [2]string{}, err
	}
	return ashwin.RequiredExtensionsFor(h, opts...)
}

// CreateSurface creates a surface on the view in e.
func CreateSurface(entry ashwin.Entry, instance vk.Instance, e app.ViewEvent, alloc *vk.AllocationCallbacks, opts ...ashwin.Option) (vk.Surface, error) {
	h, err := Handle(e)
	if err != nil {
		return vk.NullSurface, err
	}
	return ashwin.CreateSurface(entry, instance, h, alloc, opts...)
}

func unsupported(what string) error {
	return fmt.Errorf("%w: gio %s", ashwin.ErrUnsupportedWindow, what)
}
