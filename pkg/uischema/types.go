package uischema

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const (
	TypeVerticalLayout   = "VerticalLayout"
	TypeHorizontalLayout = "HorizontalLayout"
	TypeGroup            = "Group"
	TypeCategorization   = "Categorization"
	TypeCategory         = "Category"
	TypeControl          = "Control"
	TypeLabel            = "Label"

	// ScopePrefix prefixes every top-level property scope.
	ScopePrefix = "#/properties/"
)

// Element is a UI schema node: a layout with child elements or a Control
// bound to a schema property.
type Element struct {
	Type     string         `json:"type" yaml:"type"`
	Scope    string         `json:"scope,omitempty" yaml:"scope,omitempty"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Options  map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Elements []Element      `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// NewControl returns a Control scoped to the named top-level property.
func NewControl(property string) Element {
	return Element{Type: TypeControl, Scope: ScopePrefix + property}
}

// IsLayout reports whether the element holds child elements.
func (e Element) IsLayout() bool {
	switch e.Type {
	case TypeGroup, TypeCategorization, TypeCategory:
		return true
	default:
		return strings.HasSuffix(e.Type, "Layout")
	}
}

// MarshalJSON writes type first and always emits elements for layouts, so
// an empty layout serialises as {"type":"VerticalLayout","elements":[]}.
func (e Element) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := member(&buf, "type", e.Type, false); err != nil {
		return nil, err
	}
	if e.Scope != "" {
		if err := member(&buf, "scope", e.Scope, true); err != nil {
			return nil, err
		}
	}
	if e.Label != "" {
		if err := member(&buf, "label", e.Label, true); err != nil {
			return nil, err
		}
	}
	if e.Text != "" {
		if err := member(&buf, "text", e.Text, true); err != nil {
			return nil, err
		}
	}
	if len(e.Options) > 0 {
		if err := member(&buf, "options", e.Options, true); err != nil {
			return nil, err
		}
	}
	if e.IsLayout() || len(e.Elements) > 0 {
		buf.WriteString(`,"elements":[`)
		for idx, child := range e.Elements {
			if idx > 0 {
				buf.WriteByte(',')
			}
			raw, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func member(buf *bytes.Buffer, key string, value any, comma bool) error {
	if comma {
		buf.WriteByte(',')
	}
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("uischema: encode %s: %w", key, err)
	}
	buf.WriteString(`"` + key + `":`)
	buf.Write(raw)
	return nil
}

// Pretty renders e as two-space indented JSON.
func (e Element) Pretty() (string, error) {
	return schema.Pretty(e)
}

// Scopes returns every Control scope in document order.
func Scopes(root Element) []string {
	var out []string
	var walk func(Element)
	walk = func(e Element) {
		if e.Type == TypeControl && e.Scope != "" {
			out = append(out, e.Scope)
		}
		for _, child := range e.Elements {
			walk(child)
		}
	}
	walk(root)
	return out
}

// encode leaves <, > and & unescaped, as browsers do when stringifying.
func encode(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}
