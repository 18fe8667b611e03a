// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"fmt"
	"syscall"
	"unsafe"

	vk "github.com/tomas-mraz/vulkan"
	"golang.org/x/sys/windows"
)

var loaderNames = []string{"vulkan-1.dll"}

// win32SurfaceCreateInfo has the layout of VkWin32SurfaceCreateInfoKHR.
type win32SurfaceCreateInfo struct {
	sType     int32
	pNext     uintptr
	flags     uint32
	hinstance uintptr
	hwnd      uintptr
}

func loadProcAddr(name string) (unsafe.Pointer, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	p, err := windows.GetProcAddress(h, "vkGetInstanceProcAddr")
	if err != nil {
		return nil, fmt.Errorf("%s: vkGetInstanceProcAddr: %w", name, err)
	}
	return unsafe.Pointer(p), nil
}

func (e *NativeEntry) procAddr(instance vk.Instance, name string) unsafe.Pointer {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return nil
	}
	r, _, _ := syscall.SyscallN(uintptr(e.getInstanceProcAddr), uintptr(unsafe.Pointer(instance)), uintptr(unsafe.Pointer(cname)))
	return unsafe.Pointer(r)
}

func callCreateSurface(fn unsafe.Pointer, instance vk.Instance, info SurfaceCreateInfo, alloc *vk.AllocationCallbacks) (uint64, vk.Result) {
	in, ok := info.(Win32SurfaceCreateInfo)
	if !ok {
		return 0, vk.ErrorExtensionNotPresent
	}
	ci := win32SurfaceCreateInfo{
		sType:     structureTypeWin32SurfaceCreateInfo,
		hinstance: in.Hinstance,
		hwnd:      in.Hwnd,
	}
	var out uint64
	r, _, _ := syscall.SyscallN(uintptr(fn),
		uintptr(unsafe.Pointer(instance)),
		uintptr(unsafe.Pointer(&ci)),
		uintptr(unsafe.Pointer(alloc)),
		uintptr(unsafe.Pointer(&out)))
	return out, vk.Result(int32(r))
}
