// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package glfwwin

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
	"github.com/tomas-mraz/vulkan-ash-window/internal/winmod"
)

func nativeHandle(w *glfw.Window) (ashwin.Handle, error) {
	hwnd := uintptr(unsafe.Pointer(w.GetWin32Window()))
	if hwnd == 0 {
		return nil, missing("Win32 window")
	}
	hinstance, err := winmod.Instance()
	if err != nil {
		return nil, fmt.Errorf("%w: module handle: %w", ashwin.ErrUnsupportedWindow, err)
	}
	return ashwin.Win32Handle{Hinstance: hinstance, Hwnd: hwnd}, nil
}
