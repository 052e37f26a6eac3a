package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// ComponentID is the identifier the host store assigns to a component type.
// Assignment order is process-local and non-deterministic across processes,
// so ComponentIDs never travel on the wire.
type ComponentID int

// Component is the interface that the user needs to implement to make a
// struct usable as a component.
type Component interface {
	// Name returns the name of the component.
	Name() string
}

var ErrComponentSchemaMismatch = eris.New("component schema does not match target schema")

// SerializeComponentSchema reflects the JSON schema of a component type.
func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

// IsSchemaValid reports whether two serialized component schemas are
// equivalent.
func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}

// RuleInfo describes one registered replication rule. It is used for
// diagnostics and logging only; the wire protocol carries just the ordinal.
type RuleInfo struct {
	Ordinal     uint64
	Name        string
	ComponentID ComponentID
	ExcludedID  ComponentID
}
