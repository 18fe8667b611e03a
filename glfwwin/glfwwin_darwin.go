// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build darwin && !ios

package glfwwin

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

// The content view is looked up from the NSWindow when the layer is
// prepared.
func nativeHandle(w *glfw.Window) (ashwin.Handle, error) {
	h := ashwin.AppKitHandle{
		Window: uintptr(w.GetCocoaWindow()),
	}
	if h.Window == 0 {
		return nil, missing("Cocoa window")
	}
	return h, nil
}
