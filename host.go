package replicon

import "github.com/worldmesh/replicon/types"

// ComponentRegistrar is the slice of the host entity-component store that
// registration depends on: handing out the process-local identifier for a
// named component type, assigning one on first use.
type ComponentRegistrar interface {
	InitComponent(name string) types.ComponentID
}

// EntityMut is a writable handle to a single entity in the host store.
type EntityMut interface {
	// Insert installs component on the entity, replacing any existing
	// component with the same name.
	Insert(component types.Component) error

	// Remove deletes the named component from the entity. Removing a
	// component that is not present is a no-op.
	Remove(componentName string)
}
