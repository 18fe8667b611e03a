// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build !windows

package ashwin

/*
#cgo linux freebsd openbsd netbsd dragonfly LDFLAGS: -ldl
#include <stdlib.h>
#include <stdint.h>
#include <dlfcn.h>

typedef void* (*ashwinGetInstanceProcAddr)(void* instance, const char* name);
typedef int32_t (*ashwinCreateSurface)(void* instance, const void* info, const void* alloc, uint64_t* surface);

typedef struct { int32_t sType; const void* pNext; uint32_t flags; void* dpy; unsigned long window; } ashwinXlibInfo;
typedef struct { int32_t sType; const void* pNext; uint32_t flags; void* connection; uint32_t window; } ashwinXcbInfo;
typedef struct { int32_t sType; const void* pNext; uint32_t flags; void* display; void* surface; } ashwinWaylandInfo;
typedef struct { int32_t sType; const void* pNext; uint32_t flags; void* hinstance; void* hwnd; } ashwinWin32Info;
typedef struct { int32_t sType; const void* pNext; uint32_t flags; void* window; } ashwinAndroidInfo;
typedef struct { int32_t sType; const void* pNext; uint32_t flags; const void* pView; } ashwinMVKInfo;

static void* ashwinLoad(const char* lib) {
	void* handle = dlopen(lib, RTLD_NOW | RTLD_LOCAL);
	if (handle == NULL) {
		return NULL;
	}
	return dlsym(handle, "vkGetInstanceProcAddr");
}

static void* ashwinResolve(void* gipa, void* instance, const char* name) {
	return ((ashwinGetInstanceProcAddr)gipa)(instance, name);
}

static int32_t ashwinXlib(void* fn, void* instance, const void* alloc, int32_t sType, uintptr_t dpy, uint64_t window, uint64_t* out) {
	ashwinXlibInfo info = { sType, NULL, 0, (void*)dpy, (unsigned long)window };
	return ((ashwinCreateSurface)fn)(instance, &info, alloc, out);
}

static int32_t ashwinXcb(void* fn, void* instance, const void* alloc, int32_t sType, uintptr_t conn, uint32_t window, uint64_t* out) {
	ashwinXcbInfo info = { sType, NULL, 0, (void*)conn, window };
	return ((ashwinCreateSurface)fn)(instance, &info, alloc, out);
}

static int32_t ashwinWayland(void* fn, void* instance, const void* alloc, int32_t sType, uintptr_t display, uintptr_t surface, uint64_t* out) {
	ashwinWaylandInfo info = { sType, NULL, 0, (void*)display, (void*)surface };
	return ((ashwinCreateSurface)fn)(instance, &info, alloc, out);
}

static int32_t ashwinWin32(void* fn, void* instance, const void* alloc, int32_t sType, uintptr_t hinstance, uintptr_t hwnd, uint64_t* out) {
	ashwinWin32Info info = { sType, NULL, 0, (void*)hinstance, (void*)hwnd };
	return ((ashwinCreateSurface)fn)(instance, &info, alloc, out);
}

static int32_t ashwinAndroid(void* fn, void* instance, const void* alloc, int32_t sType, uintptr_t window, uint64_t* out) {
	ashwinAndroidInfo info = { sType, NULL, 0, (void*)window };
	return ((ashwinCreateSurface)fn)(instance, &info, alloc, out);
}

static int32_t ashwinMVK(void* fn, void* instance, const void* alloc, int32_t sType, uintptr_t view, uint64_t* out) {
	ashwinMVKInfo info = { sType, NULL, 0, (const void*)view };
	return ((ashwinCreateSurface)fn)(instance, &info, alloc, out);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	vk "github.com/tomas-mraz/vulkan"
)

var loaderNames = []string{
	"libvulkan.so.1",
	"libvulkan.so",
	"libvulkan.1.dylib",
	"libMoltenVK.dylib",
}

func loadProcAddr(name string) (unsafe.Pointer, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	p := C.ashwinLoad(cname)
	if p == nil {
		return nil, fmt.Errorf("%s: vkGetInstanceProcAddr not found", name)
	}
	return p, nil
}

func (e *NativeEntry) procAddr(instance vk.Instance, name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ashwinResolve(e.getInstanceProcAddr, unsafe.Pointer(instance), cname)
}

func callCreateSurface(fn unsafe.Pointer, instance vk.Instance, info SurfaceCreateInfo, alloc *vk.AllocationCallbacks) (uint64, vk.Result) {
	var out C.uint64_t
	inst := unsafe.Pointer(instance)
	pa := unsafe.Pointer(alloc)
	var ret C.int32_t
	switch in := info.(type) {
	case XlibSurfaceCreateInfo:
		ret = C.ashwinXlib(fn, inst, pa, structureTypeXlibSurfaceCreateInfo, C.uintptr_t(in.Display), C.uint64_t(in.Window), &out)
	case XcbSurfaceCreateInfo:
		ret = C.ashwinXcb(fn, inst, pa, structureTypeXcbSurfaceCreateInfo, C.uintptr_t(in.Connection), C.uint32_t(in.Window), &out)
	case WaylandSurfaceCreateInfo:
		ret = C.ashwinWayland(fn, inst, pa, structureTypeWaylandSurfaceCreateInfo, C.uintptr_t(in.Display), C.uintptr_t(in.Surface), &out)
	case Win32SurfaceCreateInfo:
		ret = C.ashwinWin32(fn, inst, pa, structureTypeWin32SurfaceCreateInfo, C.uintptr_t(in.Hinstance), C.uintptr_t(in.Hwnd), &out)
	case AndroidSurfaceCreateInfo:
		ret = C.ashwinAndroid(fn, inst, pa, structureTypeAndroidSurfaceCreateInfo, C.uintptr_t(in.Window), &out)
	case MacOSSurfaceCreateInfo:
		ret = C.ashwinMVK(fn, inst, pa, structureTypeMacOSSurfaceCreateInfo, C.uintptr_t(in.View), &out)
	case IOSSurfaceCreateInfo:
		ret = C.ashwinMVK(fn, inst, pa, structureTypeIOSSurfaceCreateInfo, C.uintptr_t(in.View), &out)
	default:
		return 0, vk.ErrorFeatureNotPresent
	}
	return uint64(out), vk.Result(ret)
}
