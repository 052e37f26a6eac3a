package replicon

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/worldmesh/replicon/types"
)

// EncodeComponent writes the wire form of a single component update to buf:
// the type's ordinal as an unsigned varint followed by the codec payload.
// The payload is not self-terminating; the outer framing layer carries its
// length.
func (r *Rules) EncodeComponent(id types.ComponentID, component any, buf *bytes.Buffer) error {
	ord, ok := r.OrdinalFor(id)
	if !ok {
		return eris.Wrap(ErrNotRegistered, fmt.Sprintf("component id %d", id))
	}

	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], uint64(ord))
	buf.Write(scratch[:n])

	return r.records[ord].Serialize(component, buf)
}

// DecodeComponent reads a single component update from cursor and applies it
// to entity. An ordinal with no local record yields ErrUnknownOrdinal, which
// the receive pipeline can treat as a dropped message rather than a broken
// stream.
func (r *Rules) DecodeComponent(entity EntityMut, mapper EntityMapper, cursor *bytes.Reader) error {
	raw, err := binary.ReadUvarint(cursor)
	if err != nil {
		return eris.Wrap(ErrDecode, err.Error())
	}

	rec, ok := r.RecordFor(Ordinal(raw))
	if !ok {
		return eris.Wrap(ErrUnknownOrdinal, fmt.Sprintf("ordinal %d", raw))
	}
	return rec.Deserialize(entity, mapper, cursor)
}

// RemoveComponent applies a replicated removal of the type registered under
// ord. Removing a component the entity does not carry is a no-op.
func (r *Rules) RemoveComponent(ord Ordinal, entity EntityMut) error {
	rec, ok := r.RecordFor(ord)
	if !ok {
		return eris.Wrap(ErrUnknownOrdinal, fmt.Sprintf("ordinal %d", ord))
	}
	rec.Remove(entity)
	return nil
}
