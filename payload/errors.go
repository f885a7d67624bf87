package payload

import "errors"

var (
	// ErrUnknownKind signals a kind name outside the closed set of kinds.
	ErrUnknownKind = errors.New("payload: unknown kind")
	// ErrUnknownSystem signals an unsupported system type name.
	ErrUnknownSystem = errors.New("payload: unknown system type")
	// ErrEmptyName signals a description without a name.
	ErrEmptyName = errors.New("payload: empty name")
)
