// Package schema holds the JSON Schema documents produced by inference. The
// types only cover the keywords inference emits (type, format, properties,
// items) and serialise them in a stable order so that the same sample data
// always yields byte-identical output.
package schema
