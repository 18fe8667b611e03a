// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"runtime"
	"slices"
)

// Variant identifies one surface constructor together with the platform
// surface extension it needs.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantMacOS
	VariantIOS
	VariantXlib
	VariantXcb
	VariantWayland
	VariantWin32
	VariantAndroid
)

var variantNames = [...]string{
	VariantUnknown: "unknown",
	VariantMacOS:   "macos",
	VariantIOS:     "ios",
	VariantXlib:    "xlib",
	VariantXcb:     "xcb",
	VariantWayland: "wayland",
	VariantWin32:   "win32",
	VariantAndroid: "android",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return variantNames[VariantUnknown]
	}
	return variantNames[v]
}

// Variants returns every known variant in declaration order.
func Variants() []Variant {
	return []Variant{
		VariantMacOS,
		VariantIOS,
		VariantXlib,
		VariantXcb,
		VariantWayland,
		VariantWin32,
		VariantAndroid,
	}
}

// ParseVariant returns the variant named s, as printed by String.
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants() {
		if v.String() == s {
			return v, true
		}
	}
	return VariantUnknown, false
}

// unixOS lists the systems where X11 and Wayland windows can exist.
var unixOS = []string{"linux", "freebsd", "openbsd", "netbsd", "dragonfly"}

// Target is the operating system surfaces are created on. Reachability is
// decided at run time so that every variant can be classified, and tested,
// on any host.
type Target struct {
	OS string
}

// CurrentTarget returns the target of the running process.
func CurrentTarget() Target {
	return Target{OS: runtime.GOOS}
}

// Reachable reports whether a constructor for v can run on t.
func (t Target) Reachable(v Variant) bool {
	switch v {
	case VariantMacOS:
		return t.OS == "darwin"
	case VariantIOS:
		return t.OS == "ios"
	case VariantXlib, VariantXcb, VariantWayland:
		return slices.Contains(unixOS, t.OS)
	case VariantWin32:
		return t.OS == "windows"
	case VariantAndroid:
		return t.OS == "android"
	}
	return false
}

// Variants returns the variants reachable on t.
func (t Target) Variants() []Variant {
	var vs []Variant
	for _, v := range Variants() {
		if t.Reachable(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

func (t Target) String() string {
	return t.OS
}
