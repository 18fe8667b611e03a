// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

/*
Package ashwin creates Vulkan surfaces from native window handles and
reports which instance extensions a window needs.

A window is described by one of the Handle types (AppKitHandle,
UIKitHandle, X11Handle, WaylandHandle, Win32Handle, AndroidHandle). A
Dispatcher classifies it into a Variant, which fixes both the surface
constructor and the pair of extensions returned by RequiredExtensions:

	d := ashwin.New(ashwin.WithX11Transport(ashwin.TransportXcb))
	exts, err := d.RequiredExtensions(h)
	// create the instance with exts enabled, then
	surface, err := d.CreateSurface(entry, instance, h, nil)

Availability is decided at run time from a Target, so a handle of a
windowing system foreign to the target fails with ErrUnsupportedVariant
instead of being compiled out.

Safety: native references inside a handle are not checked. They must
name live objects for the duration of the call, and the instance must
have been created with the reported extensions. Breaking either rule is
undefined behaviour, as it is for the underlying vkCreate*Surface calls.

On macOS and iOS, creating a surface attaches a CAMetalLayer to the
window's view. See LayerPreparer.

Toolkit adapters live in the glfwwin and giowin packages.
*/
package ashwin
