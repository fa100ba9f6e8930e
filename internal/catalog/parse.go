package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// rawEntry is one token entry in a dataset file: either a bare value string
// or an object with value and optional description.
type rawEntry struct {
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ParseJSON parses a JSON (or JSONC) dataset into ordered raw groups.
// The input is a nested mapping: group name -> token name -> entry.
//
// encoding/json maps do not preserve key order, but the catalog's contract
// requires stable declaration order, so we walk the token stream with a
// json.Decoder instead of unmarshalling into maps.
func ParseJSON(data []byte) ([]RawGroup, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("dataset root: %w", err)
	}

	var groups []RawGroup
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("group name: %w", err)
		}

		group := RawGroup{Name: name}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		for dec.More() {
			tokenName, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("group %q token name: %w", name, err)
			}

			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("token %q: %w", tokenName, err)
			}

			entry, err := decodeJSONEntry(raw)
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", tokenName, err)
			}

			group.Tokens = append(group.Tokens, RawToken{
				Name:        tokenName,
				Value:       entry.Value,
				Description: entry.Description,
			})
		}

		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		groups = append(groups, group)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("dataset root: %w", err)
	}

	return groups, nil
}

// decodeJSONEntry accepts either a bare string value or an entry object
func decodeJSONEntry(raw json.RawMessage) (rawEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return rawEntry{}, err
		}
		return rawEntry{Value: value}, nil
	}

	var entry rawEntry
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return rawEntry{}, err
	}
	if entry.Value == "" {
		return rawEntry{}, fmt.Errorf("missing required \"value\" field")
	}
	return entry, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}

// ParseYAML parses a YAML dataset into ordered raw groups.
// The yaml.Node API preserves mapping key order, unlike map unmarshalling.
func ParseYAML(data []byte) ([]RawGroup, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dataset root must be a mapping, got %v", root.Tag)
	}

	var groups []RawGroup
	for i := 0; i+1 < len(root.Content); i += 2 {
		nameNode, groupNode := root.Content[i], root.Content[i+1]
		if groupNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("group %q must be a mapping", nameNode.Value)
		}

		group := RawGroup{Name: nameNode.Value}
		for j := 0; j+1 < len(groupNode.Content); j += 2 {
			tokenNode, entryNode := groupNode.Content[j], groupNode.Content[j+1]

			entry, err := decodeYAMLEntry(entryNode)
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", tokenNode.Value, err)
			}

			group.Tokens = append(group.Tokens, RawToken{
				Name:        tokenNode.Value,
				Value:       entry.Value,
				Description: entry.Description,
			})
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// decodeYAMLEntry accepts either a bare scalar value or an entry mapping
func decodeYAMLEntry(node *yaml.Node) (rawEntry, error) {
	if node.Kind == yaml.ScalarNode {
		return rawEntry{Value: node.Value}, nil
	}

	var entry rawEntry
	if err := node.Decode(&entry); err != nil {
		return rawEntry{}, err
	}
	if entry.Value == "" {
		return rawEntry{}, fmt.Errorf("missing required \"value\" field")
	}
	return entry, nil
}
