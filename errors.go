package enginehost

import "errors"

// Common errors returned by InstanceManager operations.
var (
	// ErrManagerClosed is returned when operations are attempted on a
	// closed manager.
	ErrManagerClosed = errors.New("enginehost: manager is closed")

	// ErrNilRegistrar is returned when a nil PaintRegistrar is passed.
	ErrNilRegistrar = errors.New("enginehost: nil paint registrar")

	// ErrNilFactory is returned when a nil renderer Factory is passed.
	ErrNilFactory = errors.New("enginehost: nil renderer factory")

	// ErrUnknownInstance is returned when an operation names an identity
	// that has no slot in the registry.
	ErrUnknownInstance = errors.New("enginehost: unknown instance")
)
