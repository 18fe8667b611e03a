// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package ashwin

import (
	"errors"
	"fmt"

	vk "github.com/tomas-mraz/vulkan"
)

var (
	// ErrUnsupportedVariant is returned when a handle's windowing system has
	// no surface constructor reachable on the target.
	ErrUnsupportedVariant = errors.New("ashwin: windowing system not supported on this target")

	// ErrUnsupportedTransport is returned when an X11 window does not carry
	// the identifiers of the preferred transport (Xlib or XCB).
	ErrUnsupportedTransport = errors.New("ashwin: no supported transport for window")

	// ErrLayerAttachment is returned when a compositing layer could not be
	// obtained or attached to the native view.
	ErrLayerAttachment = errors.New("ashwin: compositing layer attachment failed")

	// ErrUnsupportedWindow is returned by toolkit adapters when the toolkit
	// reports no usable native handle for a window.
	ErrUnsupportedWindow = errors.New("ashwin: toolkit window has no usable native handle")

	// ErrExtensionNotPresent is returned by NewInstance when the loader does
	// not offer an instance extension the window needs.
	ErrExtensionNotPresent = errors.New("ashwin: instance extension not present")

	// ErrNativeAPI matches every [NativeError] with errors.Is.
	ErrNativeAPI = errors.New("ashwin: vulkan surface creation failed")
)

// NativeError carries the result code of a failed vkCreate*Surface call.
// The code is the one returned by the driver, unchanged.
type NativeError struct {
	Result vk.Result
}

func (e *NativeError) Error() string {
	if err := vk.Error(e.Result); err != nil {
		return fmt.Sprintf("vulkan error: %s (%d)", err, e.Result)
	}
	return fmt.Sprintf("vulkan error: result %d", e.Result)
}

// Is reports whether target is ErrNativeAPI.
func (e *NativeError) Is(target error) bool {
	return target == ErrNativeAPI
}

// NewError returns a *NativeError for ret, or nil if ret is vk.Success.
func NewError(ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	err := &NativeError{Result: ret}
	Logger().Debug("vulkan call failed", "result", int32(ret))
	return err
}
