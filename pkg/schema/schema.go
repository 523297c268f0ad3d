package schema

// Draft07 names the dialect stamped on inferred root schemas.
const Draft07 = "https://json-schema.org/draft-07/schema#"

// Type is a JSON Schema primitive type name.
type Type string

const (
	TypeNull    Type = "null"
	TypeBoolean Type = "boolean"
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Format is a JSON Schema string format annotation.
type Format string

const (
	FormatEmail    Format = "email"
	FormatDate     Format = "date"
	FormatDateTime Format = "date-time"
)

// Schema is a schema fragment. The zero value is the permissive schema {}.
type Schema struct {
	Type       Type
	Format     Format
	Properties *Properties
	Items      *Schema
}

// IsEmpty reports whether s carries no keywords.
func (s *Schema) IsEmpty() bool {
	return s == nil || (s.Type == "" && s.Format == "" && s.Properties == nil && s.Items == nil)
}

// Root is a top-level schema document.
type Root struct {
	Dialect string
	Schema
}

// NewRoot stamps the draft-07 dialect on fragment.
func NewRoot(fragment *Schema) Root {
	root := Root{Dialect: Draft07}
	if fragment != nil {
		root.Schema = *fragment
	}
	return root
}

// Properties is an ordered property map.
type Properties struct {
	names  []string
	byName map[string]*Schema
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{byName: make(map[string]*Schema)}
}

// Set assigns the schema for name. Re-assigning an existing name replaces the
// schema but keeps the name's original position.
func (p *Properties) Set(name string, s *Schema) {
	if p.byName == nil {
		p.byName = make(map[string]*Schema)
	}
	if _, exists := p.byName[name]; !exists {
		p.names = append(p.names, name)
	}
	p.byName[name] = s
}

// Get returns the schema registered for name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.byName[name]
	return s, ok
}

// Keys returns property names in declaration order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// Len reports the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Merge copies every entry of other into p with Set semantics.
func (p *Properties) Merge(other *Properties) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		p.Set(name, other.byName[name])
	}
}
