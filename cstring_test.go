// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCString(t *testing.T) {
	assert.Equal(t, "\x00", MakeCString(""))
	assert.Equal(t, "VK_KHR_surface\x00", MakeCString("VK_KHR_surface"))
	assert.Equal(t, "VK_KHR_surface\x00", MakeCString("VK_KHR_surface\x00"))
	assert.Equal(t, []string{"a\x00", "b\x00"}, MakeCStrings([]string{"a", "b\x00"}))
	assert.Empty(t, MakeCStrings(nil))
	assert.Equal(t, "VK_KHR_surface", trimCString("VK_KHR_surface\x00"))
}
