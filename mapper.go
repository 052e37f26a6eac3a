package replicon

import "github.com/worldmesh/replicon/types"

// EntityMapper translates an entity reference received from a remote peer
// into the local reference for the same logical entity, using the session's
// translation table.
//
// A failed lookup must return ErrEntityUnmapped; it must never allocate a
// fresh local entity as a side effect of mapping. The table is owned and
// synchronized by the connection layer, so results must not be cached across
// calls.
type EntityMapper interface {
	MapEntity(remote types.EntityID) (types.EntityID, error)
}

// EntityMapped is implemented, with a pointer receiver, by component types
// that embed entity references. MapEntities visits every embedded reference
// and replaces it with the mapped value.
//
// Any component implementing EntityMapped must be registered through
// ReplicateMapped, otherwise decoded references silently point at whatever
// local entity happens to carry the remote ID.
type EntityMapped interface {
	MapEntities(mapper EntityMapper) error
}
