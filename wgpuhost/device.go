// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpuhost adapts a wgpu adapter into an enginehost.DeviceHandle.
//
// Hosts that drive their GPU through github.com/gogpu/wgpu use this package
// to hand the manager's paint sources a device handle backed by real wgpu
// IDs. Hosts built on other stacks implement enginehost.DeviceHandle
// themselves; nothing in the core package depends on wgpuhost.
package wgpuhost

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/enginehost"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType types.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend types.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Provider owns a wgpu logical device and implements
// enginehost.DeviceHandle on top of it.
//
// The zero value is unusable; construct with Open. Close releases the
// device and the adapter it was opened from.
type Provider struct {
	adapter core.AdapterID
	device  core.DeviceID
	queue   core.QueueID
	info    *GPUInfo
}

var _ enginehost.DeviceHandle = (*Provider)(nil)

// Open creates a logical device on the given adapter and wraps it as a
// device handle. The adapter's lifetime passes to the Provider: Close
// releases both.
func Open(adapterID core.AdapterID, label string) (*Provider, error) {
	desc := &types.DeviceDescriptor{
		Label: label,
		// Default limits and no special features for now.
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	}

	deviceID, err := core.RequestDevice(adapterID, desc)
	if err != nil {
		return nil, fmt.Errorf("wgpuhost: failed to create device: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		return nil, fmt.Errorf("wgpuhost: failed to get device queue: %w", err)
	}

	p := &Provider{
		adapter: adapterID,
		device:  deviceID,
		queue:   queueID,
	}

	// Adapter info is diagnostic only; failure to fetch it is not fatal.
	if info, err := core.GetAdapterInfo(adapterID); err == nil {
		p.info = &GPUInfo{
			Name:       info.Name,
			Vendor:     info.Vendor,
			DeviceType: info.DeviceType,
			Backend:    info.Backend,
			Driver:     info.Driver,
		}
		enginehost.Logger().Info("wgpuhost: device opened",
			"gpu", p.info.String(), "driver", p.info.Driver)
	} else {
		enginehost.Logger().Warn("wgpuhost: failed to get GPU info", "err", err)
	}

	return p, nil
}

// Info returns adapter information, or nil if it could not be fetched.
func (p *Provider) Info() *GPUInfo { return p.info }

// DeviceID returns the raw wgpu device ID.
func (p *Provider) DeviceID() core.DeviceID { return p.device }

// QueueID returns the raw wgpu queue ID.
func (p *Provider) QueueID() core.QueueID { return p.queue }

// Device implements enginehost.DeviceHandle.
func (p *Provider) Device() gpucontext.Device { return deviceHandle{p} }

// Queue implements enginehost.DeviceHandle.
func (p *Provider) Queue() gpucontext.Queue { return queueHandle{p} }

// Adapter implements enginehost.DeviceHandle.
func (p *Provider) Adapter() gpucontext.Adapter { return adapterHandle{p} }

// SurfaceFormat implements enginehost.DeviceHandle.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// CheckDeviceLimits logs the device's basic limits. Useful when
// diagnosing texture-size failures on constrained GPUs.
func (p *Provider) CheckDeviceLimits() error {
	limits, err := core.GetDeviceLimits(p.device)
	if err != nil {
		return fmt.Errorf("wgpuhost: failed to get device limits: %w", err)
	}

	enginehost.Logger().Debug("wgpuhost: device limits",
		"maxTextureDimension2D", limits.MaxTextureDimension2D,
		"maxBufferSize", limits.MaxBufferSize)
	return nil
}

// Close releases the device and the adapter. Safe to call on a
// zero Provider and safe to call twice.
func (p *Provider) Close() error {
	if !p.device.IsZero() {
		if err := core.DeviceDrop(p.device); err != nil {
			return fmt.Errorf("wgpuhost: failed to release device: %w", err)
		}
		p.device = core.DeviceID{}
		p.queue = core.QueueID{}
	}
	if !p.adapter.IsZero() {
		if err := core.AdapterDrop(p.adapter); err != nil {
			return fmt.Errorf("wgpuhost: failed to release adapter: %w", err)
		}
		p.adapter = core.AdapterID{}
	}
	return nil
}

// deviceHandle adapts the provider to gpucontext.Device.
type deviceHandle struct{ p *Provider }

// Poll is a no-op: wgpu-core pumps its own callbacks.
func (deviceHandle) Poll(wait bool) {}

// Destroy is a no-op: the device's lifetime is owned by Provider.Close.
func (deviceHandle) Destroy() {}

type queueHandle struct{ p *Provider }

type adapterHandle struct{ p *Provider }
