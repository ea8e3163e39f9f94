package quantity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Quantities encode as their record string ("T 274.0 K"). Decoders also take
// an ordered field list (["T", 274, "K"]) or a mapping with name, value, unit
// and alias keys. Names containing spaces do not survive the record form.

// MarshalText implements encoding.TextMarshaler.
func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quantity) UnmarshalText(text []byte) error {
	parsed, err := FromRecord(string(text))
	if err != nil {
		return err
	}
	*q = *parsed
	return nil
}

type document struct {
	Name  any    `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
	Unit  any    `json:"unit" yaml:"unit"`
	Alias string `json:"alias" yaml:"alias"`
}

func (d document) build() (*Quantity, error) {
	return New(d.Name, d.Value, d.Unit, WithAlias(d.Alias))
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		parsed *Quantity
		err    error
	)
	switch data[0] {
	case '"':
		var record string
		if err := dec.Decode(&record); err != nil {
			return fmt.Errorf("quantity: decode json record: %w", err)
		}
		parsed, err = FromRecord(record)
	case '[':
		var fields []any
		if err := dec.Decode(&fields); err != nil {
			return fmt.Errorf("quantity: decode json fields: %w", err)
		}
		parsed, err = FromFields(fields)
	case '{':
		var doc document
		if err := dec.Decode(&doc); err != nil {
			return fmt.Errorf("quantity: decode json object: %w", err)
		}
		parsed, err = doc.build()
	default:
		return fmt.Errorf("%w: json %s", ErrInvalidArgumentType, data)
	}
	if err != nil {
		return err
	}
	*q = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (q Quantity) MarshalYAML() (any, error) {
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	var (
		parsed *Quantity
		err    error
	)
	switch node.Kind {
	case yaml.AliasNode:
		return q.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		parsed, err = FromRecord(node.Value)
	case yaml.SequenceNode:
		var fields []any
		if err := node.Decode(&fields); err != nil {
			return fmt.Errorf("quantity: decode yaml fields: %w", err)
		}
		parsed, err = FromFields(fields)
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return fmt.Errorf("quantity: decode yaml mapping: %w", err)
		}
		parsed, err = doc.build()
	default:
		return fmt.Errorf("%w: yaml node kind %d at line %d", ErrInvalidArgumentType, node.Kind, node.Line)
	}
	if err != nil {
		return err
	}
	*q = *parsed
	return nil
}
