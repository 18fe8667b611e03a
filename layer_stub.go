// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build !darwin || !cgo

package ashwin

import (
	"fmt"
	"runtime"
)

func attachAppKitLayer(window, view uintptr) (Layer, error) {
	return 0, fmt.Errorf("no AppKit compositing layer support on %s", runtime.GOOS)
}

func attachUIKitLayer(window, view uintptr) (Layer, error) {
	return 0, fmt.Errorf("no UIKit compositing layer support on %s", runtime.GOOS)
}
