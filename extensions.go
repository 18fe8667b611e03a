// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import vk "github.com/tomas-mraz/vulkan"

// Instance extension names. They are not NUL terminated; see MakeCStrings.
// The platform names are defined here because the binding only exports
// the one of the platform it was built for.
const (
	KhrSurfaceExtensionName        = vk.KhrSurfaceExtensionName
	KhrXlibSurfaceExtensionName    = "VK_KHR_xlib_surface"
	KhrXcbSurfaceExtensionName     = "VK_KHR_xcb_surface"
	KhrWaylandSurfaceExtensionName = "VK_KHR_wayland_surface"
	KhrWin32SurfaceExtensionName   = "VK_KHR_win32_surface"
	KhrAndroidSurfaceExtensionName = "VK_KHR_android_surface"
	MvkMacosSurfaceExtensionName   = "VK_MVK_macos_surface"
	MvkIosSurfaceExtensionName     = "VK_MVK_ios_surface"
)

var platformExtensions = map[Variant]string{
	VariantMacOS:   MvkMacosSurfaceExtensionName,
	VariantIOS:     MvkIosSurfaceExtensionName,
	VariantXlib:    KhrXlibSurfaceExtensionName,
	VariantXcb:     KhrXcbSurfaceExtensionName,
	VariantWayland: KhrWaylandSurfaceExtensionName,
	VariantWin32:   KhrWin32SurfaceExtensionName,
	VariantAndroid: KhrAndroidSurfaceExtensionName,
}

// RequiredExtensions returns the instance extensions that must be enabled
// before a surface of variant v can be created: VK_KHR_surface first, the
// platform surface extension second. The second entry is empty for
// VariantUnknown.
func RequiredExtensions(v Variant) [2]string {
	return [2]string{KhrSurfaceExtensionName, platformExtensions[v]}
}

// Extensions is shorthand for RequiredExtensions(v).
func (v Variant) Extensions() [2]string {
	return RequiredExtensions(v)
}
