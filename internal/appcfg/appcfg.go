// Package appcfg holds the built-in application configuration template and
// converts configuration documents between JSON and YAML.
package appcfg

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pscheid92/devbox/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultTemplate []byte

// Default returns a fresh copy of the built-in template served for apps that were never configured.
func Default() domain.ConfigDocument {
	return domain.ConfigDocument(defaultTemplate).Clone()
}

// ToYAML renders a JSON document as YAML. Map keys come out sorted.
func ToYAML(doc domain.ConfigDocument) ([]byte, error) {
	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return nil, fmt.Errorf("decode config document: %w", err)
	}
	out, err := yaml.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode config document as yaml: %w", err)
	}
	return out, nil
}

// FromYAML parses a YAML document and returns its canonical JSON form.
// Mappings with non-string keys cannot be represented and are rejected.
func FromYAML(data []byte) (domain.ConfigDocument, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse yaml config document: %w", err)
	}
	out, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("convert yaml config document to json: %w", err)
	}
	return domain.ConfigDocument(out), nil
}
