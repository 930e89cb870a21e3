// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package soft provides a CPU-rendered reference engine for enginehost.
//
// It is not a real render engine: it draws a procedurally animated test
// pattern. Its value is as an always-available backend and as live
// documentation of the Renderer contract, the same role the software
// backend plays for GPU rasterizers:
//
//   - lazy host-texture creation through PaintContext.TextureCreator
//   - in-place texture updates while the size is stable
//   - surface-format negotiation (RGBA vs BGRA byte order)
//   - signal-driven state ("speed", "paused", "background", "accent")
//
// The engine registers itself under the name "soft":
//
//	import _ "github.com/gogpu/enginehost/engines/soft"
package soft

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/enginehost"
	"github.com/gogpu/enginehost/engines"
	"github.com/gogpu/enginehost/signal"
)

// Name is the engine's registry name.
const Name = "soft"

// patternSize is the fixed edge length of the base pattern. The pattern is
// rendered once per frame at this size and rescaled to whatever the host
// requests, which keeps per-frame CPU cost independent of surface size.
const patternSize = 64

func init() {
	engines.Register(Name, func(device enginehost.DeviceHandle) (enginehost.Renderer, error) {
		return New(device, nil), nil
	})
}

// textureDestroyer is the optional capability of host textures.
type textureDestroyer interface {
	Destroy()
}

// Renderer draws an animated test pattern sized to the host surface.
//
// Renderer carries no lock of its own: the InstanceManager serializes all
// method calls (see enginehost.Renderer). The signal channel, when set, is
// drained at the top of every Render.
type Renderer struct {
	device  enginehost.DeviceHandle
	signals *signal.Channel

	background color.NRGBA
	accent     color.NRGBA
	speed      float32
	paused     bool
	phase      float64
	frames     uint64
	bgra       bool

	pattern *image.RGBA // base pattern, patternSize x patternSize
	frame   *image.RGBA // scaled to the host's requested size
	upload  []byte      // swizzle scratch, reused across frames

	texture    enginehost.TextureHandle
	texW, texH int
}

var _ enginehost.Renderer = (*Renderer)(nil)

// New creates a renderer. signals may be nil; pass a channel to feed the
// renderer reactive updates without going through the manager lock.
func New(device enginehost.DeviceHandle, signals *signal.Channel) *Renderer {
	r := &Renderer{
		device:     device,
		signals:    signals,
		background: color.NRGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff},
		accent:     color.NRGBA{R: 0xe8, G: 0x6f, B: 0x2d, A: 0xff},
		speed:      1,
		pattern:    image.NewRGBA(image.Rect(0, 0, patternSize, patternSize)),
	}
	r.applyDevice(device)
	return r
}

// Render advances the animation one step and hands the host an up-to-date
// texture. It returns nil while the host cannot mint textures yet.
func (r *Renderer) Render(ctx enginehost.PaintContext, width, height uint32) enginehost.TextureHandle {
	if width == 0 || height == 0 {
		return nil
	}

	if r.signals != nil {
		for _, u := range r.signals.Drain() {
			r.apply(u)
		}
	}

	if !r.paused {
		// Fixed step: the host drives the pace, one step per frame.
		r.phase += float64(r.speed) / 60
	}
	r.frames++

	r.drawPattern()
	r.scaleTo(int(width), int(height))
	data := r.swizzled()

	if ctx == nil {
		return nil
	}
	creator := ctx.TextureCreator()
	if creator == nil {
		// Host GPU pipeline not ready; retry next frame.
		return nil
	}

	w, h := int(width), int(height)
	if r.texture != nil && r.texW == w && r.texH == h {
		if updater, ok := r.texture.(gpucontext.TextureUpdater); ok {
			err := updater.UpdateData(data)
			if err == nil {
				return r.texture
			}
			enginehost.Logger().Warn("soft: texture update failed, recreating", "err", err)
		}
		r.destroyTexture()
	} else if r.texture != nil {
		// Size changed; the old texture cannot be reused.
		r.destroyTexture()
	}

	tex, err := creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		enginehost.Logger().Warn("soft: texture creation failed", "err", err)
		return nil
	}
	r.texture = tex
	r.texW, r.texH = w, h
	return tex
}

// HandleMessage applies a signal.Update; any other payload is ignored.
func (r *Renderer) HandleMessage(msg any) {
	if u, ok := msg.(signal.Update); ok {
		r.apply(u)
	}
}

// Suspend drops the host texture; it is recreated on the next Render.
func (r *Renderer) Suspend() {
	r.destroyTexture()
}

// Resume adopts the (possibly new) device. Host textures do not survive a
// device change, so any held texture is dropped.
func (r *Renderer) Resume(device enginehost.DeviceHandle) {
	r.applyDevice(device)
	r.destroyTexture()
}

// Shutdown releases the host texture and detaches from the signal channel;
// UI-side senders observe the closed channel and drop further updates.
func (r *Renderer) Shutdown() {
	r.destroyTexture()
	if r.signals != nil {
		r.signals.Close()
	}
}

func (r *Renderer) applyDevice(device enginehost.DeviceHandle) {
	r.device = device
	r.bgra = device != nil && device.SurfaceFormat() == gputypes.TextureFormatBGRA8Unorm
}

func (r *Renderer) apply(u signal.Update) {
	switch u.Key() {
	case "speed":
		if v, ok := u.Float32(); ok {
			r.speed = v
		}
	case "paused":
		if v, ok := u.Bool(); ok {
			r.paused = v
		}
	case "phase":
		if v, ok := u.Float64(); ok {
			r.phase = v
		}
	case "background":
		r.applyColor(u, &r.background)
	case "accent":
		r.applyColor(u, &r.accent)
	default:
		// Unknown keys are expected: the UI may watch values this
		// engine does not care about.
	}
}

func (r *Renderer) applyColor(u signal.Update, dst *color.NRGBA) {
	v, ok := u.Text()
	if !ok {
		return
	}
	c, err := parseHexColor(v)
	if err != nil {
		enginehost.Logger().Warn("soft: bad color signal ignored", "key", u.Key(), "err", err)
		return
	}
	*dst = c
}

// drawPattern fills the base pattern: solid background with one accent bar
// whose column tracks the animation phase.
func (r *Renderer) drawPattern() {
	bar := int(r.phase*8) % patternSize
	if bar < 0 {
		bar += patternSize
	}
	for y := 0; y < patternSize; y++ {
		for x := 0; x < patternSize; x++ {
			c := r.background
			if x == bar {
				c = r.accent
			}
			i := r.pattern.PixOffset(x, y)
			p := r.pattern.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
}

// scaleTo resizes the base pattern into the frame buffer.
func (r *Renderer) scaleTo(w, h int) {
	if r.frame == nil || r.frame.Bounds().Dx() != w || r.frame.Bounds().Dy() != h {
		r.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.ApproxBiLinear.Scale(r.frame, r.frame.Bounds(), r.pattern, r.pattern.Bounds(), draw.Src, nil)
}

// swizzled returns the frame pixels in the surface's byte order.
func (r *Renderer) swizzled() []byte {
	pix := r.frame.Pix
	if !r.bgra {
		return pix
	}
	if cap(r.upload) < len(pix) {
		r.upload = make([]byte, len(pix))
	}
	r.upload = r.upload[:len(pix)]
	for i := 0; i < len(pix); i += 4 {
		r.upload[i] = pix[i+2]
		r.upload[i+1] = pix[i+1]
		r.upload[i+2] = pix[i]
		r.upload[i+3] = pix[i+3]
	}
	return r.upload
}

func (r *Renderer) destroyTexture() {
	if d, ok := r.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	r.texture = nil
	r.texW, r.texH = 0, 0
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa".
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("soft: color %q must start with '#'", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("soft: color %q: %w", s, err)
	}
	switch len(s) {
	case 7:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	case 9:
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("soft: color %q has unsupported length", s)
	}
}
