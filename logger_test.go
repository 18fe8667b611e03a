// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/tomas-mraz/vulkan"
)

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	entry := &fakeEntry{}
	_, err := CreateXlibSurface(entry, nil, 1, 2, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "creating surface")
	assert.Contains(t, buf.String(), "variant=xlib")

	buf.Reset()
	entry.result = vk.ErrorOutOfHostMemory
	_, err = CreateXlibSurface(entry, nil, 1, 2, nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "vkCreateXlibSurfaceKHR")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestDebugReportCallback(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ret := debugReportCallback(vk.DebugReportFlags(vk.DebugReportErrorBit), 0, 0, 0, 7, "VALIDATION", "bad surface", nil)
	assert.Equal(t, vk.Bool32(vk.False), ret)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "[7] bad surface on layer VALIDATION")

	buf.Reset()
	debugReportCallback(vk.DebugReportFlags(vk.DebugReportWarningBit), 0, 0, 0, 8, "VALIDATION", "slow path", nil)
	assert.Contains(t, buf.String(), "level=WARN")

	var d *DebugReport
	d.Destroy()
}
