// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build (linux && !android) || freebsd || openbsd

package giowin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func TestX11Handle(t *testing.T) {
	h := x11Handle(0x2a, 0x10, 0x20)
	assert.Equal(t, ashwin.X11Handle{Window: 0x2a, Display: 0x10, Connection: 0x20}, h)

	ext, err := ashwin.RequiredExtensionsFor(h)
	require.NoError(t, err)
	assert.Equal(t, [2]string{ashwin.KhrSurfaceExtensionName, ashwin.KhrXlibSurfaceExtensionName}, ext)

	ext, err = ashwin.RequiredExtensionsFor(h, ashwin.WithX11Transport(ashwin.TransportXcb))
	require.NoError(t, err)
	assert.Equal(t, [2]string{ashwin.KhrSurfaceExtensionName, ashwin.KhrXcbSurfaceExtensionName}, ext)
}
