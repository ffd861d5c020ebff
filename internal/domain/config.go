package domain

import (
	"bytes"
	"context"
	"encoding/json"
)

// ConfigDocument is an opaque JSON value stored per application name.
// The core never inspects its shape.
type ConfigDocument json.RawMessage

func (d ConfigDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *ConfigDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)
	return nil
}

// Clone returns a copy that shares no memory with d.
func (d ConfigDocument) Clone() ConfigDocument {
	if d == nil {
		return nil
	}
	return bytes.Clone(d)
}

// Valid reports whether d holds syntactically valid JSON.
func (d ConfigDocument) Valid() bool {
	return json.Valid(d)
}

// ConfigRepository stores one document per application name. Set is a full replace.
// Get returns ErrConfigNotFound when nothing was stored; it never creates an entry.
type ConfigRepository interface {
	Get(ctx context.Context, appName string) (ConfigDocument, error)
	Set(ctx context.Context, appName string, doc ConfigDocument) error
}
