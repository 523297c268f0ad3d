package uischema

import (
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Generate lays out one Control per top-level property of s, in declaration
// order, inside a VerticalLayout. A nil schema or one without properties
// yields an empty layout. Nested objects and arrays are not expanded.
func Generate(s *schema.Schema) Element {
	if s == nil || s.Properties == nil {
		return emptyLayout()
	}
	return layoutFor(s.Properties.Keys())
}

// GenerateFromDocument applies Generate's rule to an arbitrary JSON Schema
// document, such as one edited by hand. Anything other than an object with
// an object-valued "properties" member yields an empty layout.
func GenerateFromDocument(doc jsonvalue.Value) Element {
	root, ok := doc.(*jsonvalue.Object)
	if !ok || root == nil {
		return emptyLayout()
	}
	raw, ok := root.Get("properties")
	if !ok {
		return emptyLayout()
	}
	props, ok := raw.(*jsonvalue.Object)
	if !ok || props == nil {
		return emptyLayout()
	}
	return layoutFor(props.Keys())
}

func layoutFor(names []string) Element {
	layout := emptyLayout()
	for _, name := range names {
		layout.Elements = append(layout.Elements, NewControl(name))
	}
	return layout
}

func emptyLayout() Element {
	return Element{Type: TypeVerticalLayout, Elements: []Element{}}
}
