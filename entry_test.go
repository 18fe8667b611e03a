// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryNil(t *testing.T) {
	e, err := NewEntry(nil)
	assert.Error(t, err)
	assert.Nil(t, e)
}

func TestEntryInterface(t *testing.T) {
	var _ Entry = (*NativeEntry)(nil)
	var _ Entry = (*fakeEntry)(nil)
}

func TestLoadEntryOnce(t *testing.T) {
	first, firstErr := LoadEntry()
	second, secondErr := LoadEntry()
	assert.Equal(t, firstErr, secondErr)
	if firstErr != nil {
		assert.Nil(t, first)
		assert.Nil(t, second)
		return
	}
	assert.Same(t, first, second)
	assert.NotNil(t, first.getInstanceProcAddr)
}
