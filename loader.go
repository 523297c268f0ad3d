package formbuilder

import (
	internalsource "github.com/goliatone/go-formbuilder/internal/source"
	pkgsource "github.com/goliatone/go-formbuilder/pkg/source"
)

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgsource.LoaderOption) pkgsource.Loader {
	cfg := pkgsource.NewLoaderOptions(options...)
	return internalsource.New(cfg)
}
