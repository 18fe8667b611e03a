// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build darwin && !ios && cgo

package ashwin

/*
#cgo CFLAGS: -Werror -xobjective-c -fmodules -fobjc-arc
#cgo LDFLAGS: -framework AppKit -framework QuartzCore

@import AppKit;
@import QuartzCore.CAMetalLayer;

#include <stdint.h>

static uintptr_t ashwinAttachAppKitLayer(uintptr_t windowRef, uintptr_t viewRef) {
	@autoreleasepool {
		NSWindow *window = (__bridge NSWindow *)(void *)windowRef;
		NSView *view = (__bridge NSView *)(void *)viewRef;
		if (view == nil) {
			view = window.contentView;
		}
		if (view == nil) {
			return 0;
		}
		if (window == nil) {
			window = view.window;
		}
		CAMetalLayer *layer = [CAMetalLayer layer];
		if (layer == nil) {
			return 0;
		}
		layer.edgeAntialiasingMask = 0;
		layer.presentsWithTransaction = NO;
		[layer removeAllAnimations];
		if (window != nil) {
			layer.contentsScale = window.backingScaleFactor;
		} else {
			layer.contentsScale = [NSScreen mainScreen].backingScaleFactor;
		}
		view.layer = layer;
		view.wantsLayer = YES;
		// the view keeps the layer alive
		return (uintptr_t)(__bridge void *)layer;
	}
}
*/
import "C"

import "errors"

func attachAppKitLayer(window, view uintptr) (Layer, error) {
	l := Layer(C.ashwinAttachAppKitLayer(C.uintptr_t(window), C.uintptr_t(view)))
	if !l.Valid() {
		return 0, errors.New("CAMetalLayer allocation or view lookup failed")
	}
	Logger().Debug("attached CAMetalLayer", "window", window, "view", view)
	return l, nil
}

func attachUIKitLayer(window, view uintptr) (Layer, error) {
	return 0, errors.New("UIKit windows are not available on macOS")
}
