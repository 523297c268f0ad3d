package schema

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const indent = "  "

// MarshalJSON emits type, format, properties, items in that order.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := s.writeFields(&buf, false); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON emits $schema ahead of the fragment keywords.
func (r Root) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	wrote := false
	if r.Dialect != "" {
		if err := writeMember(&buf, "$schema", r.Dialect, false); err != nil {
			return nil, err
		}
		wrote = true
	}
	if err := r.Schema.writeFields(&buf, wrote); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s Schema) writeFields(buf *bytes.Buffer, comma bool) error {
	if s.Type != "" {
		if err := writeMember(buf, "type", string(s.Type), comma); err != nil {
			return err
		}
		comma = true
	}
	if s.Format != "" {
		if err := writeMember(buf, "format", string(s.Format), comma); err != nil {
			return err
		}
		comma = true
	}
	if s.Properties != nil {
		if comma {
			buf.WriteByte(',')
		}
		buf.WriteString(`"properties":{`)
		for idx, name := range s.Properties.names {
			if err := writeMember(buf, name, s.Properties.byName[name], idx > 0); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		comma = true
	}
	if s.Items != nil {
		if err := writeMember(buf, "items", s.Items, comma); err != nil {
			return err
		}
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value any, comma bool) error {
	if comma {
		buf.WriteByte(',')
	}
	rawKey, err := encode(key)
	if err != nil {
		return fmt.Errorf("schema: encode key %q: %w", key, err)
	}
	buf.Write(rawKey)
	buf.WriteByte(':')

	var rawValue []byte
	switch v := value.(type) {
	case *Schema:
		if v == nil {
			v = &Schema{}
		}
		rawValue, err = v.MarshalJSON()
	default:
		rawValue, err = encode(v)
	}
	if err != nil {
		return fmt.Errorf("schema: encode %q: %w", key, err)
	}
	buf.Write(rawValue)
	return nil
}

// Pretty renders v as JSON indented with two spaces.
func Pretty(v json.Marshaler) (string, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return "", err
	}
	return Indent(raw)
}

// Indent re-indents a JSON document with two spaces, keeping key order.
func Indent(raw []byte) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return "", fmt.Errorf("schema: indent: %w", err)
	}
	return out.String(), nil
}

// MarshalYAML returns an ordered mapping node.
func (s Schema) MarshalYAML() (any, error) {
	node := mappingNode()
	s.appendYAML(node)
	return node, nil
}

// MarshalYAML returns an ordered mapping node with $schema first.
func (r Root) MarshalYAML() (any, error) {
	node := mappingNode()
	if r.Dialect != "" {
		node.Content = append(node.Content, scalarNode("$schema"), scalarNode(r.Dialect))
	}
	r.Schema.appendYAML(node)
	return node, nil
}

func (s Schema) appendYAML(node *yaml.Node) {
	if s.Type != "" {
		node.Content = append(node.Content, scalarNode("type"), scalarNode(string(s.Type)))
	}
	if s.Format != "" {
		node.Content = append(node.Content, scalarNode("format"), scalarNode(string(s.Format)))
	}
	if s.Properties != nil {
		props := mappingNode()
		for _, name := range s.Properties.names {
			child := mappingNode()
			if prop := s.Properties.byName[name]; prop != nil {
				prop.appendYAML(child)
			}
			props.Content = append(props.Content, scalarNode(name), child)
		}
		node.Content = append(node.Content, scalarNode("properties"), props)
	}
	if s.Items != nil {
		items := mappingNode()
		s.Items.appendYAML(items)
		node.Content = append(node.Content, scalarNode("items"), items)
	}
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// PrettyYAML renders v as YAML indented with two spaces.
func PrettyYAML(v any) (string, error) {
	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("schema: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("schema: encode yaml: %w", err)
	}
	return out.String(), nil
}

// encode leaves <, > and & unescaped, as browsers do when stringifying.
func encode(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}
