package replicon_test

import (
	"github.com/worldmesh/replicon"
	"github.com/worldmesh/replicon/types"
)

// testStore is a minimal stand-in for the host entity-component store. It
// assigns component IDs on first use, so two stores that see component names
// in different orders hand out different IDs for the same type.
type testStore struct {
	nextComponentID types.ComponentID
	idsByName       map[string]types.ComponentID
	namesByID       map[types.ComponentID]string

	nextEntityID types.EntityID
	entities     map[types.EntityID]map[string]types.Component
}

func newTestStore() *testStore {
	return &testStore{
		idsByName: make(map[string]types.ComponentID),
		namesByID: make(map[types.ComponentID]string),
		entities:  make(map[types.EntityID]map[string]types.Component),
	}
}

func (s *testStore) InitComponent(name string) types.ComponentID {
	if id, ok := s.idsByName[name]; ok {
		return id
	}
	s.nextComponentID++
	s.idsByName[name] = s.nextComponentID
	s.namesByID[s.nextComponentID] = name
	return s.nextComponentID
}

func (s *testStore) spawn(components ...types.Component) types.EntityID {
	id := s.nextEntityID
	s.nextEntityID++
	s.entities[id] = make(map[string]types.Component)
	for _, c := range components {
		s.InitComponent(c.Name())
		s.entities[id][c.Name()] = c
	}
	return id
}

func (s *testStore) entityCount() int {
	return len(s.entities)
}

func (s *testStore) has(entity types.EntityID, componentID types.ComponentID) bool {
	name, ok := s.namesByID[componentID]
	if !ok {
		return false
	}
	_, ok = s.entities[entity][name]
	return ok
}

func (s *testStore) get(entity types.EntityID, name string) (types.Component, bool) {
	c, ok := s.entities[entity][name]
	return c, ok
}

// entity returns a writable handle for one entity, matching what a receive
// pipeline would hand to the registry.
func (s *testStore) entity(id types.EntityID) *testEntity {
	return &testEntity{store: s, id: id}
}

type testEntity struct {
	store *testStore
	id    types.EntityID
}

func (e *testEntity) Insert(component types.Component) error {
	e.store.InitComponent(component.Name())
	e.store.entities[e.id][component.Name()] = component
	return nil
}

func (e *testEntity) Remove(componentName string) {
	delete(e.store.entities[e.id], componentName)
}

// testMapper is a fixed translation table. Lookups never allocate entities;
// a miss reports ErrEntityUnmapped.
type testMapper struct {
	table map[types.EntityID]types.EntityID
}

func (m testMapper) MapEntity(remote types.EntityID) (types.EntityID, error) {
	local, ok := m.table[remote]
	if !ok {
		return 0, replicon.ErrEntityUnmapped
	}
	return local, nil
}

type Position struct {
	X float64
	Y float64
}

func (Position) Name() string { return "position" }

type Health struct {
	Value int
}

func (Health) Name() string { return "health" }

type Tagline struct {
	Text string
}

func (Tagline) Name() string { return "tagline" }

// Owner embeds an entity reference, so it must be registered through
// ReplicateMapped.
type Owner struct {
	Target types.EntityID
}

func (Owner) Name() string { return "owner" }

func (o *Owner) MapEntities(mapper replicon.EntityMapper) error {
	target, err := mapper.MapEntity(o.Target)
	if err != nil {
		return err
	}
	o.Target = target
	return nil
}
