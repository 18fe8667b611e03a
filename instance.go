// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"fmt"
	"slices"

	vk "github.com/tomas-mraz/vulkan"
)

// AvailableInstanceExtensions lists the instance extensions the loader
// reports. The binding must be initialized (vk.Init) first.
func AvailableInstanceExtensions() ([]string, error) {
	var instanceExtLen uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &instanceExtLen, nil)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceExtensionProperties failed with %s", err)
	}
	instanceExt := make([]vk.ExtensionProperties, instanceExtLen)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &instanceExtLen, instanceExt)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceExtensionProperties failed with %s", err)
	}
	extNames := make([]string, 0, len(instanceExt))
	for _, ext := range instanceExt {
		ext.Deref()
		extNames = append(extNames, vk.ToString(ext.ExtensionName[:]))
	}
	return extNames, nil
}

// MissingExtensions returns the names in required that are absent from
// available, in the order of required. Trailing NULs are ignored.
func MissingExtensions(available []string, required ...string) []string {
	var missing []string
	for _, r := range required {
		name := trimCString(r)
		if name == "" {
			continue
		}
		if !slices.ContainsFunc(available, func(a string) bool { return trimCString(a) == name }) {
			missing = append(missing, name)
		}
	}
	return missing
}

// checkExtensions fails with ErrExtensionNotPresent naming every required
// extension absent from available.
func checkExtensions(available []string, required ...string) error {
	if missing := MissingExtensions(available, required...); len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrExtensionNotPresent, missing)
	}
	return nil
}

// InstanceConfig describes an instance created by NewInstance.
type InstanceConfig struct {
	AppName string

	// Extensions are enabled in addition to the surface extensions.
	Extensions []string

	// Layers are enabled when the loader reports them; the others are skipped.
	Layers []string

	// Debug enables ExtDebugReportExtensionName when the loader offers it,
	// so that NewDebugReport can be used on the instance.
	Debug bool
}

// NewInstance creates a Vulkan instance with the extensions required for h
// enabled, so that CreateSurface can succeed on it. Missing surface
// extensions fail early with ErrExtensionNotPresent and a list of their
// names. The caller owns the
// instance and destroys it with vk.DestroyInstance.
func NewInstance(cfg InstanceConfig, h Handle, opts ...Option) (vk.Instance, error) {
	var instance vk.Instance
	required, err := New(opts...).RequiredExtensions(h)
	if err != nil {
		return instance, err
	}
	available, err := AvailableInstanceExtensions()
	if err != nil {
		return instance, err
	}
	Logger().Debug(fmt.Sprintf("Instance extensions: %v", available))
	if err := checkExtensions(available, required[:]...); err != nil {
		return instance, err
	}

	extensions := append(required[:], cfg.Extensions...)
	if cfg.Debug {
		if len(MissingExtensions(available, ExtDebugReportExtensionName)) == 0 {
			extensions = append(extensions, ExtDebugReportExtensionName)
		} else {
			Logger().Warn("instance extension not available", "extension", ExtDebugReportExtensionName)
		}
	}
	var layers []string
	if len(cfg.Layers) > 0 {
		availableLayers, err := availableInstanceLayers()
		if err != nil {
			return instance, err
		}
		for _, l := range cfg.Layers {
			if slices.Contains(availableLayers, trimCString(l)) {
				layers = append(layers, l)
			} else {
				Logger().Warn("instance layer not available", "layer", l)
			}
		}
	}

	appName := cfg.AppName
	if appName == "" {
		appName = "ashwin"
	}
	instanceCreateInfo := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			ApiVersion:         vk.MakeVersion(1, 0, 0),
			ApplicationVersion: vk.MakeVersion(1, 0, 0),
			PApplicationName:   MakeCString(appName),
			PEngineName:        MakeCString("no engine"),
		},
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: MakeCStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     MakeCStrings(layers),
	}
	if err := vk.Error(vk.CreateInstance(&instanceCreateInfo, nil, &instance)); err != nil {
		return instance, fmt.Errorf("vk.CreateInstance failed with %s", err)
	}
	vk.InitInstance(instance) // used by MoltenVK
	return instance, nil
}

func availableInstanceLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceLayerProperties failed with %s", err)
	}
	props := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, props)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceLayerProperties failed with %s", err)
	}
	names := make([]string, 0, len(props))
	for _, p := range props {
		p.Deref()
		names = append(names, vk.ToString(p.LayerName[:]))
	}
	return names, nil
}
