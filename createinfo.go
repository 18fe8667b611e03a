// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

// SurfaceCreateInfo is the Go form of one Vk*SurfaceCreateInfo structure.
// An Entry turns it into the native struct and calls Command.
type SurfaceCreateInfo interface {
	// Variant is the constructor this descriptor belongs to.
	Variant() Variant
	// Extension is the instance extension that provides Command.
	Extension() string
	// Command is the vkCreate*Surface entry point name.
	Command() string

	isCreateInfo()
}

// Vulkan structure type values of the create-info structs.
const (
	structureTypeXlibSurfaceCreateInfo    = 1000004000
	structureTypeXcbSurfaceCreateInfo     = 1000005000
	structureTypeWaylandSurfaceCreateInfo = 1000006000
	structureTypeAndroidSurfaceCreateInfo = 1000008000
	structureTypeWin32SurfaceCreateInfo   = 1000009000
	structureTypeIOSSurfaceCreateInfo     = 1000122000
	structureTypeMacOSSurfaceCreateInfo   = 1000123000
)

// XlibSurfaceCreateInfo mirrors VkXlibSurfaceCreateInfoKHR.
type XlibSurfaceCreateInfo struct {
	Display uintptr
	Window  uint64
}

// XcbSurfaceCreateInfo mirrors VkXcbSurfaceCreateInfoKHR.
type XcbSurfaceCreateInfo struct {
	Connection uintptr
	Window     uint32
}

// WaylandSurfaceCreateInfo mirrors VkWaylandSurfaceCreateInfoKHR.
type WaylandSurfaceCreateInfo struct {
	Display uintptr
	Surface uintptr
}

// Win32SurfaceCreateInfo mirrors VkWin32SurfaceCreateInfoKHR.
type Win32SurfaceCreateInfo struct {
	Hinstance uintptr
	Hwnd      uintptr
}

// AndroidSurfaceCreateInfo mirrors VkAndroidSurfaceCreateInfoKHR.
type AndroidSurfaceCreateInfo struct {
	Window uintptr
}

// MacOSSurfaceCreateInfo mirrors VkMacOSSurfaceCreateInfoMVK.
// View is the CAMetalLayer prepared for the window.
type MacOSSurfaceCreateInfo struct {
	View Layer
}

// IOSSurfaceCreateInfo mirrors VkIOSSurfaceCreateInfoMVK.
// View is the CAMetalLayer prepared for the window.
type IOSSurfaceCreateInfo struct {
	View Layer
}

func (XlibSurfaceCreateInfo) Variant() Variant    { return VariantXlib }
func (XcbSurfaceCreateInfo) Variant() Variant     { return VariantXcb }
func (WaylandSurfaceCreateInfo) Variant() Variant { return VariantWayland }
func (Win32SurfaceCreateInfo) Variant() Variant   { return VariantWin32 }
func (AndroidSurfaceCreateInfo) Variant() Variant { return VariantAndroid }
func (MacOSSurfaceCreateInfo) Variant() Variant   { return VariantMacOS }
func (IOSSurfaceCreateInfo) Variant() Variant     { return VariantIOS }

func (XlibSurfaceCreateInfo) Extension() string    { return KhrXlibSurfaceExtensionName }
func (XcbSurfaceCreateInfo) Extension() string     { return KhrXcbSurfaceExtensionName }
func (WaylandSurfaceCreateInfo) Extension() string { return KhrWaylandSurfaceExtensionName }
func (Win32SurfaceCreateInfo) Extension() string   { return KhrWin32SurfaceExtensionName }
func (AndroidSurfaceCreateInfo) Extension() string { return KhrAndroidSurfaceExtensionName }
func (MacOSSurfaceCreateInfo) Extension() string   { return MvkMacosSurfaceExtensionName }
func (IOSSurfaceCreateInfo) Extension() string     { return MvkIosSurfaceExtensionName }

func (XlibSurfaceCreateInfo) Command() string    { return "vkCreateXlibSurfaceKHR" }
func (XcbSurfaceCreateInfo) Command() string     { return "vkCreateXcbSurfaceKHR" }
func (WaylandSurfaceCreateInfo) Command() string { return "vkCreateWaylandSurfaceKHR" }
func (Win32SurfaceCreateInfo) Command() string   { return "vkCreateWin32SurfaceKHR" }
func (AndroidSurfaceCreateInfo) Command() string { return "vkCreateAndroidSurfaceKHR" }
func (MacOSSurfaceCreateInfo) Command() string   { return "vkCreateMacOSSurfaceMVK" }
func (IOSSurfaceCreateInfo) Command() string     { return "vkCreateIOSSurfaceMVK" }

func (XlibSurfaceCreateInfo) isCreateInfo()    {}
func (XcbSurfaceCreateInfo) isCreateInfo()     {}
func (WaylandSurfaceCreateInfo) isCreateInfo() {}
func (Win32SurfaceCreateInfo) isCreateInfo()   {}
func (AndroidSurfaceCreateInfo) isCreateInfo() {}
func (MacOSSurfaceCreateInfo) isCreateInfo()   {}
func (IOSSurfaceCreateInfo) isCreateInfo()     {}
