// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpuhost

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestGPUInfoString(t *testing.T) {
	info := &GPUInfo{
		Name:   "Test GPU",
		Vendor: "TestVendor",
		Driver: "1.2.3",
	}
	s := info.String()
	if !strings.Contains(s, "Test GPU") {
		t.Errorf("String() = %q, should contain GPU name", s)
	}
}

func TestZeroProviderClose(t *testing.T) {
	// A never-opened provider has nothing to release.
	var p Provider
	if err := p.Close(); err != nil {
		t.Errorf("Close() on zero Provider = %v, want nil", err)
	}
	// Second close is also a no-op.
	if err := p.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestSurfaceFormat(t *testing.T) {
	var p Provider
	if got := p.SurfaceFormat(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want RGBA8Unorm", got)
	}
}
