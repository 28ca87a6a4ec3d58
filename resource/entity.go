package resource

import (
	"context"
	"fmt"

	"github.com/rios0rios0/hubgraph/transport"
)

// Loader is implemented by every lazily loaded kind. Load issues exactly one
// fetch and replaces the whole attribute cache; Reload clears the cache first.
type Loader interface {
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
}

// Entity is the behaviour shared by lazily loaded resources.
type Entity interface {
	Loader
	Kind() Kind
	Identity() string
	Attribute(ctx context.Context, name string) (Value, error)
	Loaded() bool
}

// entity holds the identity slot and the attribute cache. The owning type
// sets loader to itself so that cache misses go through its own Load.
type entity struct {
	client   Client
	schema   Schema
	identity string
	attrs    Attributes
	loaded   bool
	loader   Loader
}

func newEntity(client Client, kind Kind, seed Attributes) entity {
	e := entity{
		client: client,
		schema: SchemaFor(kind),
		attrs:  make(Attributes, len(seed)),
	}
	for key, value := range seed {
		e.attrs[transport.NormalizeKey(key)] = value
	}
	if raw, ok := e.attrs[e.schema.Identity]; ok {
		e.identity = scalarString(raw)
		delete(e.attrs, e.schema.Identity)
	}
	return e
}

func (e *entity) Kind() Kind { return e.schema.Kind }

// Identity never triggers a load.
func (e *entity) Identity() string { return e.identity }

// Loaded reports whether the cache holds a complete record.
func (e *entity) Loaded() bool { return e.loaded }

// Attribute returns the named attribute, loading the full record first when
// the name is missing from a cache that has not been loaded yet.
func (e *entity) Attribute(ctx context.Context, name string) (Value, error) {
	name = transport.NormalizeKey(name)
	if name == e.schema.Identity {
		return presentValue(e.identity), nil
	}
	if !e.schema.IsLoadable(name) {
		return Value{}, fmt.Errorf("%w: %s has no %q", ErrUnknownAttribute, e.schema.Kind, name)
	}

	if _, ok := e.attrs[name]; !ok && !e.loaded {
		if err := e.loader.Load(ctx); err != nil {
			return Value{}, err
		}
	}

	raw, ok := e.attrs[name]
	if !ok {
		return Value{}, nil
	}
	return presentValue(raw), nil
}

// cached reads the cache without ever loading.
func (e *entity) cached(name string) (any, bool) {
	raw, ok := e.attrs[name]
	return raw, ok
}

// refresh fetches path, takes the record under key and makes it the new cache.
func (e *entity) refresh(ctx context.Context, path, key string) error {
	payload, err := fetchEnvelope(ctx, e.client, path, key)
	if err != nil {
		return err
	}
	attrs, err := toAttributes(payload)
	if err != nil {
		return fmt.Errorf("failed to load %s %q: %w", e.schema.Kind, e.identity, err)
	}
	delete(attrs, e.schema.Identity)
	e.attrs = attrs
	e.loaded = true
	return nil
}

func (e *entity) clear() {
	e.attrs = Attributes{}
	e.loaded = false
}

func (e *entity) stringAttr(ctx context.Context, name string) (*string, error) {
	v, err := e.Attribute(ctx, name)
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	s, ok := v.AsString()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrAttributeType, name, v.Raw())
	}
	return &s, nil
}

func (e *entity) intAttr(ctx context.Context, name string) (*int, error) {
	v, err := e.Attribute(ctx, name)
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	i, ok := v.AsInt()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrAttributeType, name, v.Raw())
	}
	return &i, nil
}

func (e *entity) boolAttr(ctx context.Context, name string) (*bool, error) {
	v, err := e.Attribute(ctx, name)
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	b, ok := v.AsBool()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrAttributeType, name, v.Raw())
	}
	return &b, nil
}

func (e *entity) stringsAttr(ctx context.Context, name string) ([]string, error) {
	v, err := e.Attribute(ctx, name)
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	s, ok := v.AsStrings()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrAttributeType, name, v.Raw())
	}
	return s, nil
}
