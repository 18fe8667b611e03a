// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"errors"
	"unsafe"

	vk "github.com/tomas-mraz/vulkan"
)

var surfaceMem [8]byte

// testSurface is a non-null surface handle for fake entries.
var testSurface = vk.SurfaceFromPointer(uintptr(unsafe.Pointer(&surfaceMem)))

// fakeEntry records every descriptor it receives and answers with result.
type fakeEntry struct {
	result vk.Result
	infos  []SurfaceCreateInfo
}

func (e *fakeEntry) CreateSurface(instance vk.Instance, info SurfaceCreateInfo, alloc *vk.AllocationCallbacks) (vk.Surface, vk.Result) {
	e.infos = append(e.infos, info)
	if e.result != vk.Success {
		return vk.NullSurface, e.result
	}
	return testSurface, vk.Success
}

// fakeLayers returns layer from both methods, or err when set.
type fakeLayers struct {
	layer Layer
	err   error
	calls []string
}

func (p *fakeLayers) PrepareAppKitLayer(window, view uintptr) (Layer, error) {
	p.calls = append(p.calls, "appkit")
	return p.layer, p.err
}

func (p *fakeLayers) PrepareUIKitLayer(window, view uintptr) (Layer, error) {
	p.calls = append(p.calls, "uikit")
	return p.layer, p.err
}

var errLayerDenied = errors.New("layer denied")

var (
	onLinux   = Target{OS: "linux"}
	onDarwin  = Target{OS: "darwin"}
	onIOS     = Target{OS: "ios"}
	onWindows = Target{OS: "windows"}
	onAndroid = Target{OS: "android"}
)
