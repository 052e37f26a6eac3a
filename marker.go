package replicon

import "github.com/worldmesh/replicon/types"

// Replicated opts an entity into replication. The send path only considers
// entities carrying this marker; everything else is never touched.
type Replicated struct{}

func (Replicated) Name() string { return "replicated" }

// Excluded suppresses replication of C for the one entity it is attached to,
// without removing C itself. It carries no payload and is consulted at send
// time only; it is never sent to a peer.
type Excluded[C types.Component] struct{}

func (Excluded[C]) Name() string {
	var c C
	return "excluded." + c.Name()
}
