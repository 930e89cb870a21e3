package enginehost

import (
	"fmt"
	"sync"

	"github.com/gogpu/enginehost/signal"
)

// InstanceID is the stable token identifying one logical embedded-renderer
// slot across remounts. The UI layer supplies it; any value unique per
// logical UI subtree instance works (component name, scope id).
type InstanceID string

// instance is one renderer slot: zero-or-one live renderer, a reference
// count, and the paint source handle registered with the host.
//
// The renderer field stays nil until the first Resume delivers a device
// handle; see paintSource.Resume for the single point of lazy construction.
type instance struct {
	renderer Renderer
	host     PaintRegistrar
	source   SourceID
	refCount int

	// failed latches after a factory error. The slot then stays
	// permanently not-ready instead of retrying or tearing down the
	// registry.
	failed bool
}

// InstanceManager is the identity-keyed registry of renderer slots.
//
// It is an explicitly constructed object, not a package singleton: create
// one per application (or per owning UI context) with NewInstanceManager,
// pass it down the UI tree as a capability, and Close it at end of life.
//
// A single mutex guards the slot table and every renderer method call, so
// renderer construction and per-frame rendering never interleave
// inconsistently. This trades fine-grained concurrency for a simple,
// race-free model on what is a low-frequency control path.
type InstanceManager struct {
	mu        sync.Mutex
	instances map[InstanceID]*instance
	closed    bool
}

// NewInstanceManager creates an empty registry.
func NewInstanceManager() *InstanceManager {
	return &InstanceManager{instances: make(map[InstanceID]*instance)}
}

// GetOrCreate returns the paint source handle for id, creating the slot on
// first use. Call it from the UI side on every mount.
//
// If the slot already exists its reference count is incremented and the
// factory argument is discarded: construction already happened or is still
// pending behind the existing paint source. If the slot is absent, a new
// slot with count 1 is created, the factory is wrapped in a paint source,
// and that source is registered with the host. The renderer itself is NOT
// constructed here; that happens lazily on the first Resume, when a device
// handle finally exists.
//
// GetOrCreate is idempotent with respect to repeated mounts of the same
// logical instance.
func (m *InstanceManager) GetOrCreate(id InstanceID, host PaintRegistrar, factory Factory) (SourceID, error) {
	if host == nil {
		return 0, ErrNilRegistrar
	}
	if factory == nil {
		return 0, ErrNilFactory
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrManagerClosed
	}

	if inst, ok := m.instances[id]; ok {
		inst.refCount++
		return inst.source, nil
	}

	src := &paintSource{id: id, mgr: m, factory: factory}
	sourceID := host.RegisterPaintSource(src)

	m.instances[id] = &instance{
		host:     host,
		source:   sourceID,
		refCount: 1,
	}

	Logger().Debug("enginehost: instance slot created", "id", id, "source", sourceID)
	return sourceID, nil
}

// Release decrements the reference count for id. Call it from the UI side
// on every unmount.
//
// Release deliberately does NOT destroy the slot at count zero. UI
// frameworks unmount and immediately remount the same logical element
// during layout churn (a panel moved in a split view), and recreating an
// expensive engine on every such churn is unacceptable. Zero-count slots
// stay dormant but warm and are reused by the next GetOrCreate for the same
// identity. True end-of-life teardown is a separate, intentional call:
// Dispose or Close. Failing to make that call leaks the renderer for the
// process lifetime.
func (m *InstanceManager) Release(id InstanceID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inst, ok := m.instances[id]
	if !ok {
		Logger().Warn("enginehost: release of unknown instance", "id", id)
		return
	}
	if inst.refCount == 0 {
		// Caller bug: more releases than mounts. Clamp instead of
		// going negative.
		Logger().Warn("enginehost: release below zero ignored", "id", id)
		return
	}
	inst.refCount--
}

// SendMessage forwards an opaque payload to the instance's renderer via
// HandleMessage.
//
// Messages sent before the renderer is constructed, or to an identity with
// no slot, are dropped with a warning log. This is expected traffic, not an
// error: UI effects routinely fire before the first Resume.
func (m *InstanceManager) SendMessage(id InstanceID, msg any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inst, ok := m.instances[id]
	if !ok {
		Logger().Warn("enginehost: message to non-existent instance dropped", "id", id)
		return
	}
	if inst.renderer == nil {
		Logger().Warn("enginehost: message dropped, renderer not constructed yet", "id", id)
		return
	}
	inst.renderer.HandleMessage(msg)
}

// SendSignal is a typed convenience over SendMessage for reactive value
// updates.
func (m *InstanceManager) SendSignal(id InstanceID, u signal.Update) {
	m.SendMessage(id, u)
}

// Dispose removes the slot for id and shuts its renderer down exactly once.
// This is the intentional end-of-life call that Release never performs.
//
// If the host implements PaintSourceRemover the paint source is detached
// first. Disposing an identity with no slot returns ErrUnknownInstance.
func (m *InstanceManager) Dispose(id InstanceID) error {
	m.mu.Lock()
	inst, ok := m.instances[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownInstance, id)
	}
	delete(m.instances, id)
	m.mu.Unlock()

	// Shutdown runs outside the lock: the slot is unreachable now, and a
	// slow engine exit must not stall the paint thread.
	shutdownInstance(id, inst)
	return nil
}

// Close disposes every slot and marks the manager closed. Further
// GetOrCreate calls fail with ErrManagerClosed. Close is idempotent.
func (m *InstanceManager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	removed := m.instances
	m.instances = make(map[InstanceID]*instance)
	m.mu.Unlock()

	for id, inst := range removed {
		shutdownInstance(id, inst)
	}
	return nil
}

// Contains reports whether a slot exists for id, live or dormant.
func (m *InstanceManager) Contains(id InstanceID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.instances[id]
	return ok
}

// RefCount returns the current reference count for id, or 0 if no slot
// exists.
func (m *InstanceManager) RefCount(id InstanceID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst, ok := m.instances[id]; ok {
		return inst.refCount
	}
	return 0
}

// Len returns the number of slots, including dormant ones.
func (m *InstanceManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.instances)
}

// shutdownInstance detaches the paint source and invokes Shutdown on the
// renderer if one was ever constructed. Callers guarantee the instance has
// already been removed from the table, which makes the shutdown
// exactly-once.
func shutdownInstance(id InstanceID, inst *instance) {
	if remover, ok := inst.host.(PaintSourceRemover); ok {
		remover.RemovePaintSource(inst.source)
	}
	if inst.renderer == nil {
		return
	}
	Logger().Debug("enginehost: shutting down renderer", "id", id)
	inst.renderer.Shutdown()
	inst.renderer = nil
}
