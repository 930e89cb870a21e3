// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"image/color"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/enginehost"
	"github.com/gogpu/enginehost/engines"
	"github.com/gogpu/enginehost/signal"
)

// mockTexture records updates and destruction.
type mockTexture struct {
	w, h      int
	data      []byte
	updates   int
	destroyed bool
}

func (m *mockTexture) UpdateData(data []byte) error {
	m.data = append(m.data[:0], data...)
	m.updates++
	return nil
}

func (m *mockTexture) Destroy() { m.destroyed = true }

type mockCreator struct {
	textures []*mockTexture
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (enginehost.TextureHandle, error) {
	tex := &mockTexture{w: width, h: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

type mockPaintCtx struct {
	creator enginehost.TextureCreator
}

func (m *mockPaintCtx) TextureCreator() enginehost.TextureCreator { return m.creator }

type mockProvider struct {
	format gputypes.TextureFormat
}

func (m mockProvider) Device() gpucontext.Device             { return nil }
func (m mockProvider) Queue() gpucontext.Queue               { return nil }
func (m mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func TestAutoRegistered(t *testing.T) {
	if !engines.IsRegistered(Name) {
		t.Fatalf("engine %q not registered by init()", Name)
	}
	r, err := engines.Get(Name)(enginehost.NullDeviceHandle{})
	if err != nil {
		t.Fatalf("factory returned error: %v", err)
	}
	if r == nil {
		t.Fatal("factory returned nil renderer")
	}
}

func TestRenderNotReadyWithoutCreator(t *testing.T) {
	r := New(enginehost.NullDeviceHandle{}, nil)

	if tex := r.Render(nil, 64, 64); tex != nil {
		t.Error("Render with nil context should return nil")
	}
	if tex := r.Render(&mockPaintCtx{creator: nil}, 64, 64); tex != nil {
		t.Error("Render with nil creator should return nil")
	}
	if tex := r.Render(&mockPaintCtx{creator: &mockCreator{}}, 0, 0); tex != nil {
		t.Error("Render with zero size should return nil")
	}
}

func TestRenderCreatesThenUpdates(t *testing.T) {
	creator := &mockCreator{}
	ctx := &mockPaintCtx{creator: creator}
	r := New(enginehost.NullDeviceHandle{}, nil)

	first := r.Render(ctx, 80, 60)
	if first == nil {
		t.Fatal("first Render returned nil")
	}
	if len(creator.textures) != 1 {
		t.Fatalf("textures created = %d, want 1", len(creator.textures))
	}
	tex := creator.textures[0]
	if tex.w != 80 || tex.h != 60 {
		t.Errorf("texture size = %dx%d, want 80x60", tex.w, tex.h)
	}
	if len(tex.data) != 80*60*4 {
		t.Errorf("texture data = %d bytes, want %d", len(tex.data), 80*60*4)
	}

	// Same size: the existing texture is updated in place.
	second := r.Render(ctx, 80, 60)
	if second != first {
		t.Error("Render at stable size should return the same handle")
	}
	if len(creator.textures) != 1 {
		t.Errorf("textures created = %d, want 1 (no recreation)", len(creator.textures))
	}
	if tex.updates != 1 {
		t.Errorf("updates = %d, want 1", tex.updates)
	}

	// Resize: old texture destroyed, new one created.
	third := r.Render(ctx, 120, 90)
	if third == first {
		t.Error("Render at new size should return a new handle")
	}
	if !tex.destroyed {
		t.Error("old texture not destroyed on resize")
	}
	if len(creator.textures) != 2 {
		t.Errorf("textures created = %d, want 2", len(creator.textures))
	}
}

func TestBackgroundSignalApplied(t *testing.T) {
	ch := signal.NewChannel()
	creator := &mockCreator{}
	ctx := &mockPaintCtx{creator: creator}
	r := New(enginehost.NullDeviceHandle{}, ch)

	// Park the accent bar at column zero so the far corner stays pure
	// background.
	ch.Send(signal.Bool("paused", true))
	ch.Send(signal.Float64("phase", 0))
	ch.Send(signal.Text("background", "#c81e28"))

	if tex := r.Render(ctx, 64, 64); tex == nil {
		t.Fatal("Render returned nil")
	}
	data := creator.textures[0].data
	last := data[len(data)-4:]
	want := [4]byte{0xc8, 0x1e, 0x28, 0xff}
	if [4]byte(last) != want {
		t.Errorf("bottom-right pixel = %v, want %v", last, want)
	}
}

func TestBGRASwizzle(t *testing.T) {
	creator := &mockCreator{}
	ctx := &mockPaintCtx{creator: creator}
	r := New(mockProvider{format: gputypes.TextureFormatBGRA8Unorm}, nil)

	r.HandleMessage(signal.Bool("paused", true))
	r.HandleMessage(signal.Text("background", "#c81e28"))

	if tex := r.Render(ctx, 64, 64); tex == nil {
		t.Fatal("Render returned nil")
	}
	data := creator.textures[0].data
	last := data[len(data)-4:]
	want := [4]byte{0x28, 0x1e, 0xc8, 0xff} // B, G, R, A
	if [4]byte(last) != want {
		t.Errorf("bottom-right pixel = %v, want %v", last, want)
	}
}

func TestResumeDropsTexture(t *testing.T) {
	creator := &mockCreator{}
	ctx := &mockPaintCtx{creator: creator}
	r := New(enginehost.NullDeviceHandle{}, nil)

	first := r.Render(ctx, 64, 64)
	r.Resume(mockProvider{format: gputypes.TextureFormatRGBA8Unorm})

	if !creator.textures[0].destroyed {
		t.Error("texture not destroyed on Resume")
	}
	second := r.Render(ctx, 64, 64)
	if second == first {
		t.Error("Render after Resume should mint a fresh texture")
	}
}

func TestSuspendDropsTexture(t *testing.T) {
	creator := &mockCreator{}
	r := New(enginehost.NullDeviceHandle{}, nil)

	r.Render(&mockPaintCtx{creator: creator}, 64, 64)
	r.Suspend()

	if !creator.textures[0].destroyed {
		t.Error("texture not destroyed on Suspend")
	}
}

func TestShutdownClosesChannel(t *testing.T) {
	ch := signal.NewChannel()
	creator := &mockCreator{}
	r := New(enginehost.NullDeviceHandle{}, ch)

	r.Render(&mockPaintCtx{creator: creator}, 32, 32)
	r.Shutdown()

	if !creator.textures[0].destroyed {
		t.Error("texture not destroyed on Shutdown")
	}
	if ch.Send(signal.Float32("speed", 2)) {
		t.Error("channel should reject sends after Shutdown")
	}
}

func TestSpeedAndPauseSignals(t *testing.T) {
	r := New(enginehost.NullDeviceHandle{}, nil)

	r.HandleMessage(signal.Float32("speed", 3))
	if r.speed != 3 {
		t.Errorf("speed = %v, want 3", r.speed)
	}

	phase := r.phase
	r.Render(nil, 64, 64)
	if r.phase == phase {
		t.Error("phase should advance while running")
	}

	r.HandleMessage(signal.Bool("paused", true))
	phase = r.phase
	r.Render(nil, 64, 64)
	if r.phase != phase {
		t.Error("phase should hold while paused")
	}
}

func TestSignalsIgnoredOnTypeMismatch(t *testing.T) {
	r := New(enginehost.NullDeviceHandle{}, nil)
	before := r.speed

	r.HandleMessage(signal.Text("speed", "fast"))
	r.HandleMessage(signal.Int32("paused", 1))
	r.HandleMessage(signal.Float32("background", 0.5))
	r.HandleMessage("not an update")
	r.HandleMessage(nil)

	if r.speed != before {
		t.Errorf("speed = %v, want unchanged %v", r.speed, before)
	}
	if r.paused {
		t.Error("paused should stay false on mismatched kind")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	r := New(enginehost.NullDeviceHandle{}, nil)
	r.HandleMessage(signal.Float32("gravity", 9.8))
	// No observable effect and no panic.
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}, false},
		{"#00ff00", color.NRGBA{G: 0xff, A: 0xff}, false},
		{"#10141c", color.NRGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}, false},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"ff0000", color.NRGBA{}, true},
		{"#xyz", color.NRGBA{}, true},
		{"#ff00", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	creator := &mockCreator{}
	ctx := &mockPaintCtx{creator: creator}
	r := New(enginehost.NullDeviceHandle{}, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(ctx, 256, 256)
	}
}
