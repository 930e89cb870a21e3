package enginehost

// SourceID identifies a paint source registered with the host's paint
// pipeline. IDs are minted by the host; enginehost only stores and returns
// them.
type SourceID uint64

// PaintSource is the adapter the host's paint pipeline drives. The manager
// registers one per instance slot; hosts call its methods at a cadence this
// package does not control, possibly from a dedicated paint thread.
//
// Hosts must not invoke a source synchronously from inside
// RegisterPaintSource: lifecycle calls begin on the paint thread after
// registration returns.
type PaintSource interface {
	// Resume is called when a GPU device becomes available (window shown,
	// device restored after loss).
	Resume(device DeviceHandle)

	// Suspend is called when the hosting surface becomes invisible.
	Suspend()

	// Render is called once per frame. A nil result means "not ready
	// yet"; the host retries next frame.
	Render(ctx PaintContext, width, height uint32, scale float64) TextureHandle
}

// PaintRegistrar is the host-side entry point for attaching paint sources.
// A UI framework's window renderer implements this.
type PaintRegistrar interface {
	RegisterPaintSource(src PaintSource) SourceID
}

// PaintSourceRemover is an optional capability of a PaintRegistrar.
// When the host implements it, Dispose and Close detach the paint source
// before shutting the renderer down.
type PaintSourceRemover interface {
	RemovePaintSource(id SourceID)
}

// PaintContext carries per-frame host state into Render calls.
type PaintContext interface {
	// TextureCreator returns the host's texture factory, or nil while the
	// GPU pipeline is not ready to mint textures.
	TextureCreator() TextureCreator
}

// TextureCreator mints host-owned textures from raw pixel data.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (TextureHandle, error)
}
