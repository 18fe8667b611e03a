// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareLayer(t *testing.T) {
	p := &fakeLayers{layer: 0x40}

	l, err := PrepareLayer(p, AppKitHandle{Window: 1})
	require.NoError(t, err)
	assert.Equal(t, Layer(0x40), l)

	l, err = PrepareLayer(p, UIKitHandle{View: 2})
	require.NoError(t, err)
	assert.Equal(t, Layer(0x40), l)
	assert.Equal(t, []string{"appkit", "uikit"}, p.calls)
}

func TestPrepareLayerExisting(t *testing.T) {
	p := &fakeLayers{layer: 0x40}
	l, err := PrepareLayer(p, AppKitHandle{View: 1, Layer: 0x50})
	require.NoError(t, err)
	assert.Equal(t, Layer(0x50), l)
	assert.Empty(t, p.calls)
}

func TestPrepareLayerFailures(t *testing.T) {
	tests := []struct {
		name   string
		p      *fakeLayers
		h      Handle
		called bool
	}{
		{"no appkit references", &fakeLayers{layer: 0x40}, AppKitHandle{}, false},
		{"no uikit references", &fakeLayers{layer: 0x40}, UIKitHandle{}, false},
		{"preparer error", &fakeLayers{err: errLayerDenied}, AppKitHandle{View: 1}, true},
		{"zero layer", &fakeLayers{}, UIKitHandle{Window: 1}, true},
		{"not layered", &fakeLayers{layer: 0x40}, X11Handle{Window: 1, Display: 2}, false},
		{"nil handle", &fakeLayers{layer: 0x40}, nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := PrepareLayer(test.p, test.h)
			assert.ErrorIs(t, err, ErrLayerAttachment)
			assert.False(t, l.Valid())
			assert.Equal(t, test.called, len(test.p.calls) > 0)
			if test.p.err != nil {
				assert.ErrorIs(t, err, test.p.err)
			}
		})
	}
}

func TestNativeLayersUnavailable(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		t.Skip("native layers are available")
	}
	_, err := NativeLayers{}.PrepareAppKitLayer(1, 1)
	assert.Error(t, err)
	_, err = NativeLayers{}.PrepareUIKitLayer(1, 1)
	assert.Error(t, err)

	_, err = PrepareLayer(NativeLayers{}, AppKitHandle{View: 1})
	assert.ErrorIs(t, err, ErrLayerAttachment)
}
