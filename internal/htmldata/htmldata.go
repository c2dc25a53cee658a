// Package htmldata defines the HTMLDataV1 document shape used by HTML
// language services to describe custom tags: a table version, and per tag a
// name, a markup description and an ordered attribute list.
package htmldata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarkupKind discriminates how a description body is meant to be rendered.
type MarkupKind string

const (
	PlainText MarkupKind = "plaintext"
	Markdown  MarkupKind = "markdown"
)

// Valid reports whether k is one of the known kinds.
func (k MarkupKind) Valid() bool {
	return k == PlainText || k == Markdown
}

// String returns the wire spelling of the kind.
func (k MarkupKind) String() string {
	return string(k)
}

// MarkupContent is a description body tagged with its kind.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"  yaml:"kind"`
	Value string     `json:"value" yaml:"value"`
}

// IsZero reports whether no description was given at all.
func (m MarkupContent) IsZero() bool {
	return m.Kind == "" && m.Value == ""
}

// markupObject breaks the recursion into the custom unmarshalers.
type markupObject MarkupContent

// UnmarshalJSON accepts both the object form and a bare string, which the
// format allows as a shorthand for plain text.
func (m *MarkupContent) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MarkupContent{Kind: PlainText, Value: s}
		return nil
	}

	var obj markupObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("description must be a string or {kind, value} object: %w", err)
	}
	*m = MarkupContent(obj)

	return nil
}

// MarshalYAML writes the object form. Values with leading or trailing
// whitespace are double quoted, since block scalars cannot carry a leading
// newline.
func (m MarkupContent) MarshalYAML() (interface{}, error) {
	value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Value}
	if strings.TrimSpace(m.Value) != m.Value {
		value.Style = yaml.DoubleQuotedStyle
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "kind"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(m.Kind)},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "value"},
			value,
		},
	}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML sources.
func (m *MarkupContent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind == yaml.ScalarNode {
		*m = MarkupContent{Kind: PlainText, Value: node.Value}
		return nil
	}

	var obj markupObject
	if err := node.Decode(&obj); err != nil {
		return fmt.Errorf("description must be a string or {kind, value} mapping: %w", err)
	}
	*m = MarkupContent(obj)

	return nil
}

// Attribute describes one attribute accepted by a tag.
type Attribute struct {
	Name        string         `json:"name"                  yaml:"name"`
	Description *MarkupContent `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag is one entry of the table.
type Tag struct {
	Name        string        `json:"name"        yaml:"name"`
	Description MarkupContent `json:"description" yaml:"description"`
	Attributes  []Attribute   `json:"attributes"  yaml:"attributes"`
}

// Clone returns a deep copy of t. The attribute slice of the copy is never
// nil so it encodes as an empty list.
func (t Tag) Clone() Tag {
	out := Tag{
		Name:        t.Name,
		Description: t.Description,
		Attributes:  make([]Attribute, len(t.Attributes)),
	}
	for i, attr := range t.Attributes {
		out.Attributes[i] = Attribute{Name: attr.Name}
		if attr.Description != nil {
			desc := *attr.Description
			out.Attributes[i].Description = &desc
		}
	}

	return out
}

// AttributeNames returns the attribute names in authored order.
func (t Tag) AttributeNames() []string {
	names := make([]string, len(t.Attributes))
	for i, attr := range t.Attributes {
		names[i] = attr.Name
	}

	return names
}

// Document is a complete HTMLDataV1 table.
type Document struct {
	Version float64 `json:"version" yaml:"version"`
	Tags    []Tag   `json:"tags"    yaml:"tags"`
}
