// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build darwin && !ios && !cgo

package giowin

func metalLayer(uintptr) uintptr { return 0 }
