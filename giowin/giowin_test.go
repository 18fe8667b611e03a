// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package giowin

import (
	"testing"

	"gioui.org/app"
	"github.com/stretchr/testify/assert"
	vk "github.com/tomas-mraz/vulkan"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
)

func TestZeroViewEvent(t *testing.T) {
	h, err := Handle(app.ViewEvent{})
	assert.ErrorIs(t, err, ashwin.ErrUnsupportedWindow)
	assert.Nil(t, h)

	_, err = RequiredExtensions(app.ViewEvent{})
	assert.ErrorIs(t, err, ashwin.ErrUnsupportedWindow)

	surface, err := CreateSurface(nil, nil, app.ViewEvent{}, nil)
	assert.ErrorIs(t, err, ashwin.ErrUnsupportedWindow)
	assert.Equal(t, vk.NullSurface, surface)
}
