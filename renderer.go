package enginehost

// TextureHandle identifies a host-owned GPU texture.
//
// Handles are opaque to this package: hosts mint them through their
// TextureCreator and consume the handle a Renderer returns from Render.
// A nil handle means "not ready yet" and must never be treated as an error.
type TextureHandle = any

// Renderer is the contract a pluggable render-engine adapter must satisfy.
//
// Renderer methods are always invoked while the owning InstanceManager's
// lock is held, so implementations need no internal synchronization of
// their own state. The flip side of that contract: none of these methods
// may block for long. Render in particular is a single poll-and-draw step;
// an engine that needs multi-frame warmup returns nil ("not ready") instead
// of waiting.
type Renderer interface {
	// Render produces (or reuses) a drawable surface sized to the given
	// pixel dimensions. It returns nil while the engine has nothing to
	// show yet; the host retries next frame.
	Render(ctx PaintContext, width, height uint32) TextureHandle

	// HandleMessage accepts an opaque typed message, typically a
	// signal.Update. Unrecognized payload kinds are silently ignored.
	HandleMessage(msg any)

	// Suspend releases transient GPU resources when the hosting surface
	// becomes invisible.
	Suspend()

	// Resume (re)acquires GPU resources. It is called at least once
	// before Render, and again whenever the host's device comes back.
	Resume(device DeviceHandle)

	// Shutdown releases all resources and signals the underlying engine
	// to exit cleanly. The manager calls it exactly once, synchronously,
	// before the instance is dropped.
	Shutdown()
}

// Factory constructs a renderer once a GPU device handle is available.
//
// The factory is the seam where engine-specific setup (scene construction,
// system registration) is injected; it is entirely opaque to the manager.
// It is invoked at most once per instance slot, on the first Resume. A
// non-nil error marks the slot permanently not-ready: the host keeps
// painting nothing, and the failure never tears down the registry.
type Factory func(device DeviceHandle) (Renderer, error)

// RendererBase provides no-op implementations of the optional Renderer
// lifecycle methods. Embed it to implement only Render and HandleMessage:
//
//	type myRenderer struct {
//	    enginehost.RendererBase
//	}
type RendererBase struct{}

// Suspend is a no-op.
func (RendererBase) Suspend() {}

// Resume is a no-op.
func (RendererBase) Resume(DeviceHandle) {}

// Shutdown is a no-op.
func (RendererBase) Shutdown() {}
