package enginehost

// paintSource bridges host paint-pipeline callbacks to one registry slot.
//
// One paintSource exists per instance slot, created by GetOrCreate and
// handed to the host's PaintRegistrar. The host may drive it from a paint
// thread; every method takes the manager lock first, so slot access and the
// one-shot factory are serialized against UI-side registry operations.
type paintSource struct {
	id  InstanceID
	mgr *InstanceManager

	// factory is consumed on the first Resume, success or failure, and
	// never invoked again. Guarded by mgr.mu.
	factory Factory
}

var _ PaintSource = (*paintSource)(nil)

// Resume lazily constructs the renderer on first use, then forwards Resume.
//
// This is the single point of lazy construction: deferred until the host
// actually has a device, never at mount time. A factory error latches the
// slot as failed; the instance stays permanently not-ready rather than
// tearing anything down.
func (s *paintSource) Resume(device DeviceHandle) {
	m := s.mgr
	m.mu.Lock()
	defer m.mu.Unlock()

	inst, ok := m.instances[s.id]
	if !ok {
		// Disposed while still registered with the host.
		return
	}

	if inst.renderer == nil && !inst.failed && s.factory != nil {
		factory := s.factory
		s.factory = nil
		r, err := factory(device)
		if err != nil {
			inst.failed = true
			Logger().Warn("enginehost: renderer construction failed, instance stays not-ready",
				"id", s.id, "err", err)
		} else {
			inst.renderer = r
			Logger().Debug("enginehost: renderer constructed", "id", s.id)
		}
	}

	if inst.renderer != nil {
		inst.renderer.Resume(device)
	}
}

// Suspend forwards to the renderer if constructed; no-op otherwise.
func (s *paintSource) Suspend() {
	m := s.mgr
	m.mu.Lock()
	defer m.mu.Unlock()

	if inst, ok := m.instances[s.id]; ok && inst.renderer != nil {
		inst.renderer.Suspend()
	}
}

// Render forwards to the renderer if constructed; nil ("not ready")
// otherwise. The host treats nil as "retry next frame", never as an error.
func (s *paintSource) Render(ctx PaintContext, width, height uint32, scale float64) TextureHandle {
	m := s.mgr
	m.mu.Lock()
	defer m.mu.Unlock()

	inst, ok := m.instances[s.id]
	if !ok || inst.renderer == nil {
		return nil
	}
	return inst.renderer.Render(ctx, width, height)
}
