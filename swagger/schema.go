package swagger

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// PropertyKind classifies the property nodes produced by PropertyMapper.
// It is not serialized.
type PropertyKind int

const (
	KindPrimitive PropertyKind = iota
	KindRef
	KindArray
	KindByteArray
	KindMap
	KindObject
	KindFile
)

func (k PropertyKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindRef:
		return "ref"
	case KindArray:
		return "array"
	case KindByteArray:
		return "byte-array"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// Schema is a Swagger 2.0 schema object. Properties keep their order on
// output.
//
// See: https://swagger.io/specification/v2/#schema-object
type Schema struct {
	Kind PropertyKind `json:"-" yaml:"-"`

	Ref                  string   `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type                 string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format               string   `json:"format,omitempty" yaml:"format,omitempty"`
	Title                string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description          string   `json:"description,omitempty" yaml:"description,omitempty"`
	Items                *Schema  `json:"items,omitempty" yaml:"items,omitempty"`
	AdditionalProperties *Schema  `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Required             []string `json:"required,omitempty" yaml:"required,omitempty"`
	Enum                 []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum              *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	ExclusiveMinimum     bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	Maximum              *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMaximum     bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	MinLength            *int64   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength            *int64   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinItems             *int64   `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems             *int64   `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	Pattern              string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	ReadOnly             bool     `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Example              any      `json:"example,omitempty" yaml:"example,omitempty"`

	Properties []NamedSchema `json:"-" yaml:"-"`
}

// NamedSchema is one entry of an ordered properties object.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Property returns the named property schema.
func (s *Schema) Property(name string) (*Schema, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// PropertyNames returns the property names in output order.
func (s *Schema) PropertyNames() []string {
	names := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		names[i] = p.Name
	}
	return names
}

// MarshalJSON writes properties as an object in declared order.
func (s Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	base, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}
	if len(s.Properties) == 0 {
		return base, nil
	}

	var buf bytes.Buffer
	buf.Write(base[:len(base)-1])
	if len(base) > 2 {
		buf.WriteByte(',')
	}
	buf.WriteString(`"properties":{`)
	for i, p := range s.Properties {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.Schema)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// MarshalYAML writes properties as a mapping in declared order.
func (s Schema) MarshalYAML() (any, error) {
	type plain Schema
	var node yaml.Node
	if err := node.Encode(plain(s)); err != nil {
		return nil, err
	}
	if len(s.Properties) == 0 {
		return &node, nil
	}

	props := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range s.Properties {
		var value yaml.Node
		if err := value.Encode(p.Schema); err != nil {
			return nil, err
		}
		props.Content = append(props.Content, stringNode(p.Name), &value)
	}
	node.Style &^= yaml.FlowStyle
	node.Content = append(node.Content, stringNode("properties"), props)
	return &node, nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// RefSchema returns a reference to a definition.
func RefSchema(name string) *Schema {
	return &Schema{Kind: KindRef, Ref: "#/definitions/" + name}
}
