// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/tomas-mraz/vulkan"
)

// Each descriptor must name an extension that RequiredExtensions advertises
// for its variant, otherwise instances created from the advertised list
// cannot create the surface.
func TestCreateInfoExtensionsAdvertised(t *testing.T) {
	infos := []SurfaceCreateInfo{
		XlibSurfaceCreateInfo{},
		XcbSurfaceCreateInfo{},
		WaylandSurfaceCreateInfo{},
		Win32SurfaceCreateInfo{},
		AndroidSurfaceCreateInfo{},
		MacOSSurfaceCreateInfo{},
		IOSSurfaceCreateInfo{},
	}
	seen := map[Variant]bool{}
	for _, info := range infos {
		ext := RequiredExtensions(info.Variant())
		assert.Contains(t, ext[:], info.Extension(), info.Command())
		assert.Equal(t, ext[1], info.Extension(), info.Command())
		seen[info.Variant()] = true
	}
	assert.Len(t, seen, len(Variants()))
}

func TestConstructors(t *testing.T) {
	entry := &fakeEntry{}
	calls := []func() (vk.Surface, error){
		func() (vk.Surface, error) { return CreateXlibSurface(entry, nil, 0x10, 0x20, nil) },
		func() (vk.Surface, error) { return CreateXcbSurface(entry, nil, 0x10, 0x20, nil) },
		func() (vk.Surface, error) { return CreateWaylandSurface(entry, nil, 0x10, 0x20, nil) },
		func() (vk.Surface, error) { return CreateWin32Surface(entry, nil, 0x10, 0x20, nil) },
		func() (vk.Surface, error) { return CreateAndroidSurface(entry, nil, 0x10, nil) },
		func() (vk.Surface, error) { return CreateMacOSSurface(entry, nil, 0x10, nil) },
		func() (vk.Surface, error) { return CreateIOSSurface(entry, nil, 0x10, nil) },
	}
	for _, call := range calls {
		surface, err := call()
		require.NoError(t, err)
		assert.Equal(t, testSurface, surface)
	}
	assert.Equal(t, []SurfaceCreateInfo{
		XlibSurfaceCreateInfo{Display: 0x10, Window: 0x20},
		XcbSurfaceCreateInfo{Connection: 0x10, Window: 0x20},
		WaylandSurfaceCreateInfo{Display: 0x10, Surface: 0x20},
		Win32SurfaceCreateInfo{Hinstance: 0x10, Hwnd: 0x20},
		AndroidSurfaceCreateInfo{Window: 0x10},
		MacOSSurfaceCreateInfo{View: 0x10},
		IOSSurfaceCreateInfo{View: 0x10},
	}, entry.infos)
}

func TestConstructorNativeError(t *testing.T) {
	for _, ret := range []vk.Result{vk.ErrorOutOfHostMemory, vk.ErrorExtensionNotPresent, vk.ErrorInitializationFailed} {
		entry := &fakeEntry{result: ret}
		surface, err := CreateWaylandSurface(entry, nil, 1, 2, nil)
		require.Error(t, err)
		assert.Equal(t, vk.NullSurface, surface)
		assert.ErrorIs(t, err, ErrNativeAPI)

		var nerr *NativeError
		require.True(t, errors.As(err, &nerr))
		assert.Equal(t, ret, nerr.Result)
		assert.Len(t, entry.infos, 1)
	}
}

func TestLayeredConstructorsNeedLayer(t *testing.T) {
	entry := &fakeEntry{}
	_, err := CreateMacOSSurface(entry, nil, 0, nil)
	assert.ErrorIs(t, err, ErrLayerAttachment)
	_, err = CreateIOSSurface(entry, nil, 0, nil)
	assert.ErrorIs(t, err, ErrLayerAttachment)
	assert.Empty(t, entry.infos)
}
