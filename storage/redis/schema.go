package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

var (
	ErrNoSchemaFound = errors.New("no schema found")
)

// SchemaStorage keeps the serialized component schemas for one replication
// session so every peer registers against the same component definitions.
type SchemaStorage struct {
	Namespace string
	Client    *redis.Client
}

type Options = redis.Options

func NewSchemaStorage(options Options, namespace string) SchemaStorage {
	return SchemaStorage{
		Namespace: namespace,
		Client:    redis.NewClient(&options),
	}
}

func (r *SchemaStorage) GetSchema(componentName string) ([]byte, error) {
	ctx := context.Background()
	schemaBytes, err := r.Client.HGet(ctx, r.schemaStorageKey(), componentName).Bytes()
	if eris.Is(err, redis.Nil) {
		return nil, eris.Wrap(ErrNoSchemaFound, componentName)
	} else if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return schemaBytes, nil
}

func (r *SchemaStorage) SetSchema(componentName string, schemaData []byte) error {
	ctx := context.Background()
	return eris.Wrap(r.Client.HSet(ctx, r.schemaStorageKey(), componentName, schemaData).Err(), "")
}

func (r *SchemaStorage) Close() error {
	return eris.Wrap(r.Client.Close(), "")
}

func (r *SchemaStorage) schemaStorageKey() string {
	return r.Namespace + ":schemas"
}
