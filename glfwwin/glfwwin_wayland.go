// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build linux && !android && wayland

package glfwwin

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func nativeHandle(w *glfw.Window) (ashwin.Handle, error) {
	h := ashwin.WaylandHandle{
		Display: uintptr(unsafe.Pointer(glfw.GetWaylandDisplay())),
		Surface: uintptr(unsafe.Pointer(w.GetWaylandWindow())),
	}
	if h.Display == 0 || h.Surface == 0 {
		return nil, missing("wayland surface")
	}
	return h, nil
}
