// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"fmt"

	vk "github.com/tomas-mraz/vulkan"
)

// Every constructor below fills one create-info descriptor and makes a
// single entry.CreateSurface call. The instance must have been created with
// RequiredExtensions of the constructor's variant and the native references
// must be alive; neither is checked. A failed call returns a *NativeError
// carrying the driver's result code. The surface belongs to the caller,
// who destroys it with vk.DestroySurface.

// CreateXlibSurface creates a surface for an Xlib window.
func CreateXlibSurface(entry Entry, instance vk.Instance, display uintptr, window uint64, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	return createSurface(entry, instance, XlibSurfaceCreateInfo{
		Display: display,
		Window:  window,
	}, alloc)
}

// CreateXcbSurface creates a surface for an XCB window.
func CreateXcbSurface(entry Entry, instance vk.Instance, connection uintptr, window uint32, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	return createSurface(entry, instance, XcbSurfaceCreateInfo{
		Connection: connection,
		Window:     window,
	}, alloc)
}

// CreateWaylandSurface creates a surface for a wl_surface.
func CreateWaylandSurface(entry Entry, instance vk.Instance, display, surface uintptr, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	return createSurface(entry, instance, WaylandSurfaceCreateInfo{
		Display: display,
		Surface: surface,
	}, alloc)
}

// CreateWin32Surface creates a surface for a Win32 window.
func CreateWin32Surface(entry Entry, instance vk.Instance, hinstance, hwnd uintptr, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	return createSurface(entry, instance, Win32SurfaceCreateInfo{
		Hinstance: hinstance,
		Hwnd:      hwnd,
	}, alloc)
}

// CreateAndroidSurface creates a surface for an ANativeWindow.
func CreateAndroidSurface(entry Entry, instance vk.Instance, window uintptr, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	return createSurface(entry, instance, AndroidSurfaceCreateInfo{
		Window: window,
	}, alloc)
}

// CreateMacOSSurface creates a surface on a CAMetalLayer prepared with
// PrepareLayer. An invalid layer fails with ErrLayerAttachment and the
// entry is not called.
func CreateMacOSSurface(entry Entry, instance vk.Instance, layer Layer, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	if !layer.Valid() {
		return vk.NullSurface, fmt.Errorf("%w: macos surface needs a CAMetalLayer", ErrLayerAttachment)
	}
	return createSurface(entry, instance, MacOSSurfaceCreateInfo{View: layer}, alloc)
}

// CreateIOSSurface creates a surface on a CAMetalLayer prepared with
// PrepareLayer. An invalid layer fails with ErrLayerAttachment and the
// entry is not called.
func CreateIOSSurface(entry Entry, instance vk.Instance, layer Layer, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	if !layer.Valid() {
		return vk.NullSurface, fmt.Errorf("%w: ios surface needs a CAMetalLayer", ErrLayerAttachment)
	}
	return createSurface(entry, instance, IOSSurfaceCreateInfo{View: layer}, alloc)
}

func createSurface(entry Entry, instance vk.Instance, info SurfaceCreateInfo, alloc *vk.AllocationCallbacks) (vk.Surface, error) {
	log := Logger()
	log.Info("creating surface", "variant", info.Variant(), "extension", info.Extension())
	surface, ret := entry.CreateSurface(instance, info, alloc)
	if err := NewError(ret); err != nil {
		log.Warn(fmt.Sprintf("%s failed with %s", info.Command(), err))
		return vk.NullSurface, err
	}
	return surface, nil
}
