// Package jsonvalue models decoded JSON as a closed set of value kinds that
// keep object keys in document order. Schema inference walks these values
// instead of map[string]any so that generated properties follow the order in
// which the sample data declared them.
package jsonvalue
