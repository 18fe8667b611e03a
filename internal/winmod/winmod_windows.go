// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

// Package winmod returns the module handle Win32 surfaces are created with.
package winmod

import "golang.org/x/sys/windows"

// Instance returns the HINSTANCE of the running executable.
func Instance() (uintptr, error) {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return 0, err
	}
	return uintptr(h), nil
}
