// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build darwin && !ios && cgo

package giowin

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework QuartzCore

#include <stdint.h>
#import <QuartzCore/CAMetalLayer.h>

static int giowinIsMetalLayer(uintptr_t ref) {
	@autoreleasepool {
		id layer = (__bridge id)(void *)ref;
		return [layer isKindOfClass:[CAMetalLayer class]] ? 1 : 0;
	}
}
*/
import "C"

// metalLayer returns layer when it is a CAMetalLayer and 0 otherwise.
func metalLayer(layer uintptr) uintptr {
	if layer == 0 || C.giowinIsMetalLayer(C.uintptr_t(layer)) == 0 {
		return 0
	}
	return layer
}
