// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	vk "github.com/tomas-mraz/vulkan"
)

func TestNewError(t *testing.T) {
	assert.NoError(t, NewError(vk.Success))

	err := NewError(vk.ErrorSurfaceLost)
	assert.ErrorIs(t, err, ErrNativeAPI)
	assert.NotErrorIs(t, err, ErrUnsupportedVariant)
	assert.Equal(t, &NativeError{Result: vk.ErrorSurfaceLost}, err)
	assert.NotEmpty(t, err.Error())

	assert.NotEmpty(t, (&NativeError{Result: vk.Success}).Error())
}

func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{ErrUnsupportedVariant, ErrUnsupportedTransport, ErrLayerAttachment, ErrUnsupportedWindow, ErrExtensionNotPresent, ErrNativeAPI}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "%v / %v", a, b)
		}
	}
}
