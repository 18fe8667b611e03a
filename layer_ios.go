// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build ios && cgo

package ashwin

/*
#cgo CFLAGS: -Werror -xobjective-c -fmodules -fobjc-arc
#cgo LDFLAGS: -framework UIKit -framework QuartzCore

@import UIKit;
@import QuartzCore.CAMetalLayer;

#include <stdint.h>

static uintptr_t ashwinAttachUIKitLayer(uintptr_t windowRef, uintptr_t viewRef) {
	@autoreleasepool {
		UIWindow *window = (__bridge UIWindow *)(void *)windowRef;
		UIView *view = (__bridge UIView *)(void *)viewRef;
		if (view == nil) {
			view = window.rootViewController.view;
		}
		if (view == nil) {
			return 0;
		}
		CAMetalLayer *layer = [CAMetalLayer layer];
		if (layer == nil) {
			return 0;
		}
		layer.edgeAntialiasingMask = 0;
		layer.presentsWithTransaction = NO;
		[layer removeAllAnimations];
		layer.contentsScale = view.contentScaleFactor;
		layer.frame = view.bounds;
		[view.layer addSublayer:layer];
		return (uintptr_t)(__bridge void *)layer;
	}
}
*/
import "C"

import "errors"

func attachAppKitLayer(window, view uintptr) (Layer, error) {
	return 0, errors.New("AppKit windows are not available on iOS")
}

func attachUIKitLayer(window, view uintptr) (Layer, error) {
	l := Layer(C.ashwinAttachUIKitLayer(C.uintptr_t(window), C.uintptr_t(view)))
	if !l.Valid() {
		return 0, errors.New("CAMetalLayer allocation or view lookup failed")
	}
	Logger().Debug("attached CAMetalLayer", "window", window, "view", view)
	return l, nil
}
