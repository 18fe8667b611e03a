// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build darwin && !ios

package giowin

import (
	"gioui.org/app"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func viewHandle(e app.ViewEvent) (ashwin.Handle, error) {
	if e.View == 0 {
		return nil, unsupported("view event has no NSView")
	}
	return ashwin.AppKitHandle{View: e.View, Layer: metalLayer(e.Layer)}, nil
}
