package replicon

import "github.com/rotisserie/eris"

var (
	// ErrEncode means a serialize function could not produce a byte
	// representation of a component value.
	ErrEncode = eris.New("failed to encode component")

	// ErrDecode means a byte cursor was exhausted, malformed, or did not
	// match the shape of the target component type. Input comes from a
	// remote peer, so this is always a recoverable error value.
	ErrDecode = eris.New("failed to decode component")

	// ErrUnknownOrdinal means a received ordinal has no record on this
	// process. It signals a protocol mismatch between peers and is kept
	// distinct from ErrDecode so the pipeline can drop a single message
	// instead of the connection.
	ErrUnknownOrdinal = eris.New("unknown replication ordinal")

	// ErrNotRegistered means a component type was never registered for
	// replication on this registry.
	ErrNotRegistered = eris.New("component not registered for replication")

	// ErrAlreadyRegistered means a component type was registered for
	// replication twice. Registration happens once per type at startup.
	ErrAlreadyRegistered = eris.New("component already registered for replication")

	// ErrSealed means a registration was attempted after Seal.
	ErrSealed = eris.New("replication rules are sealed")

	// ErrEntityUnmapped means a remote entity reference has no local
	// counterpart in the session's translation table.
	ErrEntityUnmapped = eris.New("no local entity for remote entity reference")
)
