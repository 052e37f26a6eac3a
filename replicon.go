// Package replicon keeps the bookkeeping that lets a server and its clients
// agree on how entity components travel over the network. Host code declares,
// once at startup, which component types are replicated; the registry hands
// out compact wire ordinals and dispatches the matching codec functions on
// the send and receive paths.
package replicon

import (
	"bytes"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/worldmesh/replicon/codec"
	"github.com/worldmesh/replicon/types"
)

// Replicate registers C for replication with the default codec.
//
// C is encoded as is. Use Replicate only for components without entity
// references; components that embed entity references must go through
// ReplicateMapped. The Excluded[C] marker is initialized as a side effect so
// it can be attached to entities even before any traffic runs.
func Replicate[C types.Component](rules *Rules) (Ordinal, error) {
	return ReplicateWith[C](rules, serializeComponent[C], deserializeComponent[C])
}

// ReplicateMapped registers C like Replicate, but decoding remaps every
// embedded entity reference through the session's EntityMapper before the
// component is installed. PC is the pointer type of C; it carries the
// EntityMapped implementation.
func ReplicateMapped[C types.Component, PC interface {
	*C
	EntityMapped
}](rules *Rules) (Ordinal, error) {
	return ReplicateWith[C](rules, serializeComponent[C], deserializeMappedComponent[C, PC])
}

// ReplicateWith registers C with the given codec functions, for types that
// need a bespoke wire format or replicate only part of their fields.
func ReplicateWith[C types.Component](
	rules *Rules,
	serialize SerializeFn,
	deserialize DeserializeFn,
) (Ordinal, error) {
	var c C
	schema, err := types.SerializeComponentSchema(c)
	if err != nil {
		return 0, err
	}
	return rules.register(
		c.Name(),
		Excluded[C]{}.Name(),
		serialize,
		deserialize,
		removeComponent[C],
		schema,
	)
}

// Default serialization function. The registry only ever invokes it for
// values of the type it was registered against; the assertion stands in for
// the raw pointer cast that a type-erased store would otherwise force.
func serializeComponent[C types.Component](component any, buf *bytes.Buffer) error {
	comp, ok := component.(C)
	if !ok {
		if ptr, isPtr := component.(*C); isPtr {
			comp = *ptr
		} else {
			var want C
			return eris.Wrap(ErrEncode,
				fmt.Sprintf("expected a %q value, got %T", want.Name(), component),
			)
		}
	}
	if err := codec.EncodeTo(comp, buf); err != nil {
		return eris.Wrap(ErrEncode, err.Error())
	}
	return nil
}

// Default deserialization function.
func deserializeComponent[C types.Component](
	entity EntityMut,
	_ EntityMapper,
	cursor *bytes.Reader,
) error {
	comp, err := codec.DecodeFrom[C](cursor)
	if err != nil {
		return eris.Wrap(ErrDecode, err.Error())
	}
	return entity.Insert(comp)
}

// Like deserializeComponent, but also maps entities before insertion.
func deserializeMappedComponent[C types.Component, PC interface {
	*C
	EntityMapped
}](
	entity EntityMut,
	mapper EntityMapper,
	cursor *bytes.Reader,
) error {
	comp, err := codec.DecodeFrom[C](cursor)
	if err != nil {
		return eris.Wrap(ErrDecode, err.Error())
	}
	if err := PC(&comp).MapEntities(mapper); err != nil {
		return err
	}
	return entity.Insert(comp)
}

// Removes the component from the entity.
func removeComponent[C types.Component](entity EntityMut) {
	var c C
	entity.Remove(c.Name())
}
