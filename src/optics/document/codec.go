package document

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeYAML parses a YAML document into a tree.
func DecodeYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	return normalize(raw)
}

// EncodeYAML renders a tree as YAML.
func EncodeYAML(tree any) ([]byte, error) {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("document: encode yaml: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON document into a tree.
func DecodeJSON(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: decode json: %w", err)
	}
	return normalize(raw)
}

// EncodeJSON renders a tree as JSON.
func EncodeJSON(tree any) ([]byte, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("document: encode json: %w", err)
	}
	return data, nil
}
