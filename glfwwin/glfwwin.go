// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

// Package glfwwin turns GLFW windows into ashwin handles.
//
// GLFW must be initialized and every function must be called on the main
// thread, as for any other GLFW call. X11 windows carry both the Xlib
// display and its XCB connection, so either ashwin.X11Transport can be
// passed as an option. Build with the wayland tag (the same tag
// go-gl/glfw uses) to get Wayland handles instead.
package glfwwin

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/tomas-mraz/vulkan"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

// Handle returns the native handle of w. It fails with
// ashwin.ErrUnsupportedWindow when GLFW reports no native window.
func Handle(w *glfw.Window) (h ashwin.Handle, err error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil glfw window", ashwin.ErrUnsupportedWindow)
	}
	// go-gl/glfw panics on GLFW errors such as a missing platform
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, fmt.Errorf("%w: %v", ashwin.ErrUnsupportedWindow, r)
		}
	}()
	return nativeHandle(w)
}

// RequiredExtensions returns the instance extensions needed for a surface
// on w.
func RequiredExtensions(w *glfw.Window, opts ...ashwin.Option) ([2]string, error) {
	h, err := Handle(w)
	if err != nil {
		return [2]string{}, err
	}
	return ashwin.RequiredExtensionsFor(h, opts...)
}

// CreateSurface creates a surface for w. See ashwin.Dispatcher.CreateSurface.
func CreateSurface(entry ashwin.Entry, instance vk.Instance, w *glfw.Window, alloc *vk.AllocationCallbacks, opts ...ashwin.Option) (vk.Surface, error) {
	h, err := Handle(w)
	if err != nil {
		return vk.NullSurface, err
	}
	return ashwin.CreateSurface(entry, instance, h, alloc, opts...)
}

// ProcAddr returns the vkGetInstanceProcAddr GLFW loaded.
func ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// NewEntry returns an ashwin entry that uses the loader GLFW loaded.
func NewEntry() (*ashwin.NativeEntry, error) {
	return ashwin.NewEntry(ProcAddr())
}

func missing(what string) error {
	return fmt.Errorf("%w: glfw reports no %s", ashwin.ErrUnsupportedWindow, what)
}
