// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import "fmt"

// X11Transport selects how an X11 window is presented to Vulkan.
type X11Transport int

const (
	// TransportXlib uses VK_KHR_xlib_surface. It is the default.
	TransportXlib X11Transport = iota

	// TransportXcb uses VK_KHR_xcb_surface.
	TransportXcb
)

func (t X11Transport) String() string {
	switch t {
	case TransportXlib:
		return "xlib"
	case TransportXcb:
		return "xcb"
	}
	return fmt.Sprintf("X11Transport(%d)", int(t))
}

// ParseX11Transport parses "xlib" or "xcb".
func ParseX11Transport(s string) (X11Transport, error) {
	switch s {
	case "xlib", "":
		return TransportXlib, nil
	case "xcb":
		return TransportXcb, nil
	}
	return TransportXlib, fmt.Errorf("unknown X11 transport %q", s)
}

// Option configures a Dispatcher.
//
// Example:
//
//	d := ashwin.New(ashwin.WithX11Transport(ashwin.TransportXcb))
type Option func(*options)

type options struct {
	transport X11Transport
	target    Target
	layers    LayerPreparer
}

func defaultOptions() options {
	return options{
		transport: TransportXlib,
		target:    CurrentTarget(),
		layers:    NativeLayers{},
	}
}

// WithX11Transport sets the transport used for X11 windows.
// There is no fallback: if the window lacks the chosen transport's
// identifiers, classification fails with ErrUnsupportedTransport.
func WithX11Transport(t X11Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithTarget overrides the target used to decide which variants are
// reachable. Mostly useful in tests and tools.
func WithTarget(t Target) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithLayerPreparer replaces the native compositing-layer step used for
// AppKit and UIKit windows. A nil preparer restores the native one.
func WithLayerPreparer(p LayerPreparer) Option {
	return func(o *options) {
		if p == nil {
			p = NativeLayers{}
		}
		o.layers = p
	}
}
