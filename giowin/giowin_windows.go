// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package giowin

import (
	"fmt"

	"gioui.org/app"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
	"github.com/tomas-mraz/vulkan-ash-window/internal/winmod"
)

func viewHandle(e app.ViewEvent) (ashwin.Handle, error) {
	if e.HWND == 0 {
		return nil, unsupported("view event has no HWND")
	}
	hinstance, err := winmod.Instance()
	if err != nil {
		return nil, fmt.Errorf("%w: module handle: %w", ashwin.ErrUnsupportedWindow, err)
	}
	return ashwin.Win32Handle{Hinstance: hinstance, Hwnd: e.HWND}, nil
}
