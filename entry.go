// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	vk "github.com/tomas-mraz/vulkan"
)

// Entry is the part of the Vulkan loader that creates platform surfaces.
// It receives one filled descriptor per call and returns the driver's
// result code unchanged.
type Entry interface {
	CreateSurface(instance vk.Instance, info SurfaceCreateInfo, alloc *vk.AllocationCallbacks) (vk.Surface, vk.Result)
}

// NativeEntry resolves surface commands through vkGetInstanceProcAddr and
// calls them directly. It holds no state besides the resolver and is safe
// for concurrent use.
type NativeEntry struct {
	getInstanceProcAddr unsafe.Pointer
}

// NewEntry wraps a vkGetInstanceProcAddr function pointer, such as the one
// returned by glfw.GetVulkanGetInstanceProcAddress.
func NewEntry(getInstanceProcAddr unsafe.Pointer) (*NativeEntry, error) {
	if getInstanceProcAddr == nil {
		return nil, errors.New("ashwin: nil vkGetInstanceProcAddr")
	}
	return &NativeEntry{getInstanceProcAddr: getInstanceProcAddr}, nil
}

// LoadEntry opens the system Vulkan loader and returns an entry backed by
// its vkGetInstanceProcAddr. The loader is opened once per process and
// stays open; later calls return the same entry or the same error.
func LoadEntry() (*NativeEntry, error) {
	return loadEntryOnce()
}

var loadEntryOnce = sync.OnceValues(loadEntry)

func loadEntry() (*NativeEntry, error) {
	var errs []error
	for _, name := range loaderNames {
		p, err := loadProcAddr(name)
		if err == nil {
			Logger().Debug("loaded vulkan loader", "library", name)
			return NewEntry(p)
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("ashwin: no vulkan loader found: %w", errors.Join(errs...))
}

// CreateSurface implements Entry.
func (e *NativeEntry) CreateSurface(instance vk.Instance, info SurfaceCreateInfo, alloc *vk.AllocationCallbacks) (vk.Surface, vk.Result) {
	fn := e.procAddr(instance, info.Command())
	if fn == nil {
		Logger().Debug("surface command not found", "command", info.Command())
		return vk.NullSurface, vk.ErrorExtensionNotPresent
	}
	raw, ret := callCreateSurface(fn, instance, info, alloc)
	if ret != vk.Success {
		return vk.NullSurface, ret
	}
	return vk.SurfaceFromPointer(uintptr(raw)), ret
}
