// Package enginehost embeds long-lived, GPU-backed render engines inside
// reactive UI trees while keeping the engine's lifecycle decoupled from the
// UI element's mount/unmount cycle.
//
// UI frameworks may mount and unmount a hosting element repeatedly, for
// example while a panel is dragged between split views. Recreating an
// expensive render engine on every such churn is unacceptable, so enginehost
// keys engines by a stable instance identity and reference-counts the mounts:
//
//	UI mount    -> InstanceManager.GetOrCreate (refcount++)
//	UI unmount  -> InstanceManager.Release     (refcount--, slot kept warm)
//	end of life -> InstanceManager.Dispose     (shutdown exactly once)
//
// # Architecture
//
// Three pieces cooperate:
//
//   - InstanceManager: identity-keyed table of renderer slots with reference
//     counts, guarded by a single mutex.
//   - Paint source: the adapter registered with the host's paint pipeline.
//     It forwards Resume/Suspend/Render to the slot and performs lazy
//     construction: the renderer Factory runs on the first Resume, when a
//     GPU device handle is finally available, never at mount time.
//   - signal.Channel: a non-blocking conduit carrying typed value updates
//     from UI effect callbacks into the renderer's own update loop.
//
// # Usage
//
// On the UI side:
//
//	mgr := enginehost.NewInstanceManager()
//	defer mgr.Close()
//
//	// Component mount:
//	srcID, err := mgr.GetOrCreate("code-editor", host, func(device enginehost.DeviceHandle) (enginehost.Renderer, error) {
//	    return editor.New(device), nil
//	})
//
//	// Reactive effect:
//	mgr.SendSignal("code-editor", signal.Float32("speed", 2.5))
//
//	// Component unmount:
//	mgr.Release("code-editor")
//
// The host's paint pipeline drives the registered paint source at its own
// cadence: Resume when a device becomes available, Render every frame,
// Suspend when the surface goes invisible.
//
// # Not ready is not an error
//
// Render returns a nil TextureHandle until the renderer is constructed and
// has produced a drawable surface. Hosts must treat nil as "retry next
// frame". Likewise, messages sent before the first Resume are dropped with a
// warning log, not an error: the UI side is allowed to fire effects before
// the GPU exists.
//
// # Thread safety
//
// All registry mutation and all renderer method invocation happen under the
// manager's single mutex, serializing the UI/control thread against the
// host's paint thread. The signal channel is the only data path that crosses
// threads without that lock.
package enginehost
