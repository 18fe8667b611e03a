// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"fmt"

	vk "github.com/tomas-mraz/vulkan"
)

// Dispatcher classifies window handles and routes them to the matching
// surface constructor. It is immutable once built and safe for
// concurrent use; surface creation on one window must still be serialized
// by the caller (see LayerPreparer).
type Dispatcher struct {
	opts options
}

// New returns a Dispatcher for the current target using the Xlib
// transport for X11 windows, unless options say otherwise.
func New(opts ...Option) *Dispatcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher{opts: o}
}

// Target returns the target the dispatcher classifies for.
func (d *Dispatcher) Target() Target {
	return d.opts.target
}

// X11Transport returns the transport used for X11 windows.
func (d *Dispatcher) X11Transport() X11Transport {
	return d.opts.transport
}

// Classify returns the variant whose constructor serves h.
//
// It fails with ErrUnsupportedVariant when h is nil, not one of the
// package's handle types, or names a windowing system that is not
// reachable on the target. For an X11 window the transport comes from
// the dispatcher's preference; if the window lacks that transport's
// identifiers, Classify fails with ErrUnsupportedTransport rather than
// choosing the other one.
func (d *Dispatcher) Classify(h Handle) (Variant, error) {
	var v Variant
	switch h := h.(type) {
	case AppKitHandle:
		v = VariantMacOS
	case UIKitHandle:
		v = VariantIOS
	case X11Handle:
		v = VariantXlib
		if d.opts.transport == TransportXcb {
			v = VariantXcb
		}
	case WaylandHandle:
		v = VariantWayland
	case Win32Handle:
		v = VariantWin32
	case AndroidHandle:
		v = VariantAndroid
	default:
		return VariantUnknown, fmt.Errorf("%w: unknown handle type %T", ErrUnsupportedVariant, h)
	}
	if !d.opts.target.Reachable(v) {
		return VariantUnknown, fmt.Errorf("%w: %s window on %s", ErrUnsupportedVariant, h.System(), d.opts.target)
	}
	if x, ok := h.(X11Handle); ok {
		switch {
		case v == VariantXlib && !x.hasXlib():
			return VariantUnknown, fmt.Errorf("%w: x11 window has no xlib display", ErrUnsupportedTransport)
		case v == VariantXcb && !x.hasXcb():
			return VariantUnknown, fmt.Errorf("%w: x11 window has no xcb connection or a window id wider than 32 bits", ErrUnsupportedTransport)
		}
	}
	return v, nil
}

// RequiredExtensions returns the instance extensions needed to create a
// surface for h. It fails exactly when Classify does.
func (d *Dispatcher) RequiredExtensions(h Handle) ([2]string, error) {
	v, err := d.Classify(h)
	if err != nil {
		return [2]string{}, err
	}
	return RequiredExtensions(v), nil
}

// CreateSurface creates a surface for h through entry.
//
// For AppKit and UIKit windows it first prepares a compositing layer, which
// attaches a CAMetalLayer to the native view; see LayerPreparer for the
// consequences. Errors are the Classify errors, ErrLayerAttachment, or a
// *NativeError with the driver's result code.
//
// The handle's native references must be alive and instance must have been
// created with RequiredExtensions(h); violating either is undefined
// behaviour.
func (d *Dispatcher) CreateSurface(entry Entry, instance vk.Instance, h Handle, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	v, err := d.Classify(h)
	if err != nil {
		return vk.NullSurface, err
	}
	switch v {
	case VariantMacOS, VariantIOS:
		layer, err := PrepareLayer(d.opts.layers, h)
		if err != nil {
			return vk.NullSurface, err
		}
		if v == VariantMacOS {
			return CreateMacOSSurface(entry, instance, layer, alloc)
		}
		return CreateIOSSurface(entry, instance, layer, alloc)
	case VariantXlib:
		x := h.(X11Handle)
		return CreateXlibSurface(entry, instance, x.Display, x.Window, alloc)
	case VariantXcb:
		x := h.(X11Handle)
		return CreateXcbSurface(entry, instance, x.Connection, uint32(x.Window), alloc)
	case VariantWayland:
		w := h.(WaylandHandle)
		return CreateWaylandSurface(entry, instance, w.Display, w.Surface, alloc)
	case VariantWin32:
		w := h.(Win32Handle)
		return CreateWin32Surface(entry, instance, w.Hinstance, w.Hwnd, alloc)
	case VariantAndroid:
		a := h.(AndroidHandle)
		return CreateAndroidSurface(entry, instance, a.Window, alloc)
	}
	return vk.NullSurface, fmt.Errorf("%w: %s", ErrUnsupportedVariant, v)
}

// Classify is New(opts...).Classify(h).
func Classify(h Handle, opts ...Option) (Variant, error) {
	return New(opts...).Classify(h)
}

// RequiredExtensionsFor is New(opts...).RequiredExtensions(h).
func RequiredExtensionsFor(h Handle, opts ...Option) ([2]string, error) {
	return New(opts...).RequiredExtensions(h)
}

// CreateSurface is New(opts...).CreateSurface(entry, instance, h, alloc).
func CreateSurface(entry Entry, instance vk.Instance, h Handle, alloc *vk.AllocationCallbacks, opts ...Option) (vk.Surface, error) {
	return New(opts...).CreateSurface(entry, instance, h, alloc)
}
