package types

// EntityID identifies an entity within a single process. IDs are assigned by
// the host store and are not comparable across processes; the same logical
// entity has unrelated IDs on a server and on each of its clients.
type EntityID uint64
