// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build android || ios || js

package giowin

import (
	"runtime"

	"gioui.org/app"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

// Gio hands out a JNI view or a UIViewController here, neither of which a
// surface can be created from.
func viewHandle(app.ViewEvent) (ashwin.Handle, error) {
	return nil, unsupported("view events on " + runtime.GOOS)
}
