// Package source describes where input documents (sample data, schemas, UI
// schemas) come from and the contract for loading them. The default loader
// lives in internal/source and is constructed through formbuilder.NewLoader.
package source
