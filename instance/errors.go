package instance

import "errors"

// Sentinel errors for the instance package, prefixed "instance: " for
// consistency with the rest of the module.
var (
	// ErrUnsupportedKind is returned by Generate when Kind is outside
	// {KindAsc, KindSame, KindMixed}.
	ErrUnsupportedKind = errors.New("instance: unsupported kind")

	// ErrInvalidArity is returned by Generate when n < 1.
	ErrInvalidArity = errors.New("instance: arity must be >= 1")

	// ErrEncodeInstance wraps a CBOR encoding failure from Save.
	ErrEncodeInstance = errors.New("instance: failed to encode instance")

	// ErrDecodeInstance wraps a CBOR decoding failure from Load.
	ErrDecodeInstance = errors.New("instance: failed to decode instance")
)
