// Package uischema generates and reads JSON Forms style UI schemas: layout
// trees whose Control leaves point at JSON Schema properties through
// "#/properties/<name>" scopes. Generation is deliberately flat; widget choice
// is left to the form renderer, which dispatches on the referenced property's
// type, format and enum.
package uischema
