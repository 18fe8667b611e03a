// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import "strings"

const (
	end     = "\x00"
	endChar = '\x00'
)

// MakeCString returns s with a single trailing NUL, as the binding expects
// for every string handed to Vulkan.
func MakeCString(s string) string {
	if len(s) == 0 {
		return end
	}
	if s[len(s)-1] != endChar {
		return s + end
	}
	return s
}

// MakeCStrings applies MakeCString to every name.
func MakeCStrings(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = MakeCString(n)
	}
	return out
}

// trimCString drops a trailing NUL so names compare equal regardless of
// whether the caller already terminated them.
func trimCString(s string) string {
	return strings.TrimRight(s, end)
}
