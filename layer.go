// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import "fmt"

// Layer is a CAMetalLayer* attached to a native view. The zero Layer is
// never a valid surface target.
type Layer uintptr

// Valid reports whether l refers to a layer.
func (l Layer) Valid() bool {
	return l != 0
}

// LayerPreparer performs the platform step that layered compositors need
// before a surface can be created: it obtains a CAMetalLayer, configures
// it and attaches it to the window's view.
//
// This mutates the view. Preparing the same view twice, or a view that
// already hosts a layer of its own, is undefined by the platform; callers
// must guard against it and must serialize calls for one window.
type LayerPreparer interface {
	PrepareAppKitLayer(window, view uintptr) (Layer, error)
	PrepareUIKitLayer(window, view uintptr) (Layer, error)
}

// NativeLayers is the LayerPreparer backed by AppKit on macOS and UIKit on
// iOS. On any other target both methods fail with ErrLayerAttachment.
type NativeLayers struct{}

// PrepareAppKitLayer attaches a new CAMetalLayer to view, or to window's
// content view when view is zero.
func (NativeLayers) PrepareAppKitLayer(window, view uintptr) (Layer, error) {
	return attachAppKitLayer(window, view)
}

// PrepareUIKitLayer adds a new CAMetalLayer to view, or to the root view of
// window when view is zero.
func (NativeLayers) PrepareUIKitLayer(window, view uintptr) (Layer, error) {
	return attachUIKitLayer(window, view)
}

// PrepareLayer runs the compositing-layer step for a layered handle
// (AppKitHandle or UIKitHandle) and checks its outcome. An AppKitHandle
// that already names a layer is returned without calling p. It fails with
// ErrLayerAttachment, without calling p, when the handle names neither a
// window nor a view, and whenever p fails or yields no layer.
func PrepareLayer(p LayerPreparer, h Handle) (Layer, error) {
	var (
		layer Layer
		err   error
	)
	switch h := h.(type) {
	case AppKitHandle:
		if h.Layer != 0 {
			return Layer(h.Layer), nil
		}
		if h.Window == 0 && h.View == 0 {
			return 0, fmt.Errorf("%w: appkit handle has neither window nor view", ErrLayerAttachment)
		}
		layer, err = p.PrepareAppKitLayer(h.Window, h.View)
	case UIKitHandle:
		if h.Window == 0 && h.View == 0 {
			return 0, fmt.Errorf("%w: uikit handle has neither window nor view", ErrLayerAttachment)
		}
		layer, err = p.PrepareUIKitLayer(h.Window, h.View)
	default:
		return 0, fmt.Errorf("%w: %T is not a layered window", ErrLayerAttachment, h)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLayerAttachment, err)
	}
	if !layer.Valid() {
		return 0, fmt.Errorf("%w: no layer returned for %s window", ErrLayerAttachment, h.System())
	}
	return layer, nil
}
