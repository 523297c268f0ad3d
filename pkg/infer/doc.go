// Package infer derives a draft-07 JSON Schema from a sample JSON value.
//
// Inference is structural and total: every value yields a schema. Objects
// keep their key order, arrays are assumed homogeneous (arrays of objects
// union the properties of every element), and strings are annotated with an
// email, date-time or date format when they look like one.
package infer
