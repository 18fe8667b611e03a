// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package glfwwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	vk "github.com/tomas-mraz/vulkan"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func TestNilWindow(t *testing.T) {
	h, err := Handle(nil)
	assert.ErrorIs(t, err, ashwin.ErrUnsupportedWindow)
	assert.Nil(t, h)

	_, err = RequiredExtensions(nil)
	assert.ErrorIs(t, err, ashwin.ErrUnsupportedWindow)

	surface, err := CreateSurface(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ashwin.ErrUnsupportedWindow)
	assert.Equal(t, vk.NullSurface, surface)
}
