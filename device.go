// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package enginehost

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This is the primary integration point between enginehost and GPU
// frameworks like gogpu. The host application implements DeviceHandle and
// passes it to paint sources on Resume, allowing embedded engines to use
// the shared GPU device.
//
// Key principle: enginehost RECEIVES the device from the host, it does NOT
// create one. Renderer construction is deferred until the first Resume
// precisely because no device exists at UI-mount time.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing an
// enginehost-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only renderers and for tests where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
