// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"fmt"
	"unsafe"

	vk "github.com/tomas-mraz/vulkan"
)

// ExtDebugReportExtensionName is enabled by NewInstance when
// InstanceConfig.Debug is set and the loader offers it.
const ExtDebugReportExtensionName = vk.ExtDebugReportExtensionName

// DebugReport forwards loader and validation layer messages to Logger.
type DebugReport struct {
	instance vk.Instance
	callback vk.DebugReportCallback
}

// NewDebugReport registers a report callback on instance, which must have
// been created with ExtDebugReportExtensionName. Destroy it before the
// instance.
func NewDebugReport(instance vk.Instance) (*DebugReport, error) {
	info := vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit),
		PfnCallback: debugReportCallback,
	}
	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(instance, &info, nil, &callback)); err != nil {
		return nil, fmt.Errorf("vk.CreateDebugReportCallback failed with %s", err)
	}
	return &DebugReport{instance: instance, callback: callback}, nil
}

// Destroy unregisters the callback.
func (d *DebugReport) Destroy() {
	if d == nil || d.callback == vk.NullDebugReportCallback {
		return
	}
	vk.DestroyDebugReportCallback(d.instance, d.callback, nil)
	d.callback = vk.NullDebugReportCallback
}

func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint64, messageCode int32, pLayerPrefix string, pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
	log := Logger()
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		log.Error(fmt.Sprintf("[%d] %s on layer %s", messageCode, pMessage, pLayerPrefix))
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		log.Warn(fmt.Sprintf("[%d] %s on layer %s", messageCode, pMessage, pLayerPrefix))
	default:
		log.Debug(fmt.Sprintf("[%d] %s on layer %s", messageCode, pMessage, pLayerPrefix))
	}
	return vk.Bool32(vk.False)
}
