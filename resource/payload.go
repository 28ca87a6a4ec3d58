package resource

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rios0rios0/hubgraph/transport"
)

// Attributes is the raw attribute set of an entity, as decoded from a payload
// or supplied by a caller.
type Attributes map[string]any

func toAttributes(payload any) (Attributes, error) {
	fields, ok := transport.Normalize(payload).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a record, got %T", transport.ErrMalformedEnvelope, payload)
	}
	return Attributes(fields), nil
}

func toAttributeList(payload any) ([]Attributes, error) {
	if payload == nil {
		return nil, nil
	}
	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of records, got %T", transport.ErrMalformedEnvelope, payload)
	}
	out := make([]Attributes, 0, len(items))
	for _, item := range items {
		attrs, err := toAttributes(item)
		if err != nil {
			return nil, err
		}
		out = append(out, attrs)
	}
	return out, nil
}

func toStrings(payload any) ([]string, error) {
	if payload == nil {
		return nil, nil
	}
	out, ok := presentValue(payload).AsStrings()
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of names, got %T", transport.ErrMalformedEnvelope, payload)
	}
	return out, nil
}

// toStringMap decodes name -> scalar mappings such as tags and branches.
func toStringMap(payload any) (map[string]string, error) {
	if payload == nil {
		return map[string]string{}, nil
	}
	fields, ok := transport.Normalize(payload).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping, got %T", transport.ErrMalformedEnvelope, payload)
	}
	out := make(map[string]string, len(fields))
	for key, raw := range fields {
		value, _ := presentValue(raw).AsString()
		out[key] = value
	}
	return out, nil
}

// fetchEnvelope issues a GET and returns the payload under key.
func fetchEnvelope(ctx context.Context, client Client, path, key string) (any, error) {
	resp, err := client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	payload, err := resp.Envelope(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from %s: %w", key, path, err)
	}
	return payload, nil
}

func scalarString(raw any) string {
	s, _ := presentValue(raw).AsString()
	return s
}

func segment(s string) string {
	return url.PathEscape(s)
}
