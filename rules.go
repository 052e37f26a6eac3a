package replicon

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/worldmesh/replicon/log"
	"github.com/worldmesh/replicon/storage/redis"
	"github.com/worldmesh/replicon/types"
)

// Ordinal identifies a replicated component type on the wire. Ordinals are
// dense, start at zero, and are assigned in registration order, so every peer
// in a session must issue the same Replicate* calls in the same order. The
// registry cannot enforce that by itself; Fingerprint makes it checkable.
type Ordinal uint64

type (
	// SerializeFn encodes a type-erased component value into buf.
	SerializeFn func(component any, buf *bytes.Buffer) error

	// DeserializeFn decodes one component value from cursor and installs
	// it on entity, remapping embedded entity references through mapper
	// before insertion.
	DeserializeFn func(entity EntityMut, mapper EntityMapper, cursor *bytes.Reader) error

	// RemoveFn deletes the component from entity if present.
	RemoveFn func(entity EntityMut)
)

// Record stores how one registered component type is replicated. Records are
// immutable once appended.
type Record struct {
	// ExcludedID is the host identifier of the Excluded[C] marker paired
	// with this type.
	ExcludedID types.ComponentID

	Serialize   SerializeFn
	Deserialize DeserializeFn
	Remove      RemoveFn

	componentID types.ComponentID
	name        string
	schema      []byte
}

// Name returns the component name the record was registered under.
func (rec Record) Name() string { return rec.name }

// Schema returns the serialized JSON schema of the component type.
func (rec Record) Schema() []byte { return rec.schema }

// SchemaStorage persists component schemas so independently built peers can
// detect divergent component definitions at registration time.
type SchemaStorage interface {
	GetSchema(componentName string) ([]byte, error)
	SetSchema(componentName string, schemaData []byte) error
}

// Rules maps between host-assigned component identifiers and network-stable
// ordinals, and stores per ordinal the codec functions used to dispatch
// replication traffic.
//
// Rules has a two-phase lifecycle: all registration happens during
// application setup, then Seal freezes the registry before any traffic
// starts. A sealed registry is read-only and safe for concurrent use.
type Rules struct {
	host ComponentRegistrar

	// Maps component IDs to their replication ordinals.
	ids map[types.ComponentID]Ordinal

	// Rule records indexed by ordinal.
	records []Record

	// ID of the Replicated marker component.
	markerID types.ComponentID

	schemas     SchemaStorage
	logger      zerolog.Logger
	cfg         Config
	sealed      bool
	fingerprint uint64
}

// Option augments the creation of a Rules registry.
type Option func(r *Rules)

// WithSchemaStorage validates every registered component's schema against
// storage shared by the session's peers.
func WithSchemaStorage(storage SchemaStorage) Option {
	return func(r *Rules) {
		r.schemas = storage
	}
}

// WithLogger sets the logger used for registration and seal diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Rules) {
		r.logger = logger
	}
}

// NewRules creates an empty, unsealed registry bound to the host store. The
// Replicated marker identifier is assigned immediately.
func NewRules(host ComponentRegistrar, opts ...Option) *Rules {
	r := &Rules{
		host:     host,
		ids:      make(map[types.ComponentID]Ordinal),
		markerID: host.InitComponent(Replicated{}.Name()),
		logger:   zerolog.Nop(),
		cfg:      GetConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MarkerID returns the host identifier of the Replicated marker. Only
// entities with this component are replicated at all.
func (r *Rules) MarkerID() types.ComponentID {
	return r.markerID
}

// OrdinalFor returns the wire ordinal for a registered component type. The
// second return is false if the type was never registered.
func (r *Rules) OrdinalFor(id types.ComponentID) (Ordinal, bool) {
	ord, ok := r.ids[id]
	return ord, ok
}

// ExcludedIDFor returns the host identifier of the Excluded[C] marker for the
// component type registered under id. The second return is false if the type
// was never registered.
func (r *Rules) ExcludedIDFor(id types.ComponentID) (types.ComponentID, bool) {
	ord, ok := r.ids[id]
	if !ok {
		return 0, false
	}
	return r.records[ord].ExcludedID, true
}

// RecordFor returns the record stored for ord. The second return is false if
// ord was never produced by this registry; ordinals obtained from OrdinalFor
// are always valid.
func (r *Rules) RecordFor(ord Ordinal) (Record, bool) {
	if ord >= Ordinal(len(r.records)) {
		return Record{}, false
	}
	return r.records[ord], true
}

// Len returns the number of registered rules.
func (r *Rules) Len() int {
	return len(r.records)
}

// Sealed reports whether the registry has been frozen.
func (r *Rules) Sealed() bool {
	return r.sealed
}

// Seal freezes the registry. Registration after Seal fails, reads need no
// locking afterwards. Seal also fixes the registration fingerprint and logs
// the rule table. Sealing twice is a no-op.
func (r *Rules) Seal() {
	if r.sealed {
		return
	}
	r.sealed = true

	digest := xxhash.New()
	for _, rec := range r.records {
		_, _ = digest.WriteString(rec.name)
		_, _ = digest.Write([]byte{0})
	}
	r.fingerprint = digest.Sum64()

	log.Rules(&r.logger, r, zerolog.InfoLevel)
	r.logger.Info().
		Uint64("fingerprint", r.fingerprint).
		Msg("replication rules sealed")
}

// Fingerprint returns a digest of the registration sequence. Peers exchange
// fingerprints before traffic starts; unequal values mean the Replicate*
// call order differs and ordinals cannot be trusted. Only meaningful after
// Seal.
func (r *Rules) Fingerprint() uint64 {
	return r.fingerprint
}

// Infos returns one RuleInfo per registered type, in ordinal order.
func (r *Rules) Infos() []types.RuleInfo {
	infos := make([]types.RuleInfo, 0, len(r.records))
	for ord, rec := range r.records {
		infos = append(infos, types.RuleInfo{
			Ordinal:     uint64(ord),
			Name:        rec.name,
			ComponentID: rec.componentID,
			ExcludedID:  rec.ExcludedID,
		})
	}
	return infos
}

// register is the single registration primitive behind the Replicate*
// entry points. It assigns the next ordinal and appends the record.
func (r *Rules) register(
	name string,
	excludedName string,
	serialize SerializeFn,
	deserialize DeserializeFn,
	remove RemoveFn,
	schema []byte,
) (Ordinal, error) {
	if r.sealed {
		return 0, eris.Wrap(ErrSealed, fmt.Sprintf("cannot register component %q", name))
	}

	componentID := r.host.InitComponent(name)
	if _, ok := r.ids[componentID]; ok {
		return 0, eris.Wrap(ErrAlreadyRegistered, fmt.Sprintf("component %q", name))
	}

	if r.schemas != nil && r.cfg.ValidateSchemas {
		if err := r.validateSchema(name, schema); err != nil {
			return 0, err
		}
	}

	rec := Record{
		ExcludedID:  r.host.InitComponent(excludedName),
		Serialize:   serialize,
		Deserialize: deserialize,
		Remove:      remove,
		componentID: componentID,
		name:        name,
		schema:      schema,
	}
	r.records = append(r.records, rec)

	ord := Ordinal(len(r.records) - 1)
	r.ids[componentID] = ord

	r.logger.Debug().
		Str("component_name", name).
		Int("component_id", int(componentID)).
		Uint64("ordinal", uint64(ord)).
		Msg("registered replication rule")

	return ord, nil
}

// validateSchema compares the component schema against the copy shared by the
// session's peers, storing it on first registration.
func (r *Rules) validateSchema(name string, schema []byte) error {
	storedSchema, err := r.schemas.GetSchema(name)
	if err != nil && !eris.Is(err, redis.ErrNoSchemaFound) {
		return err
	}

	if storedSchema == nil {
		return r.schemas.SetSchema(name, schema)
	}

	ok, err := types.IsSchemaValid(schema, storedSchema)
	if err != nil {
		return eris.Wrap(err, "error when validating component schema against stored schema")
	}
	if !ok {
		return eris.Wrap(types.ErrComponentSchemaMismatch,
			fmt.Sprintf("component %q does not match the schema stored for this session", name),
		)
	}
	return nil
}
