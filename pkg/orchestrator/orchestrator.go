package orchestrator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-formbuilder/pkg/infer"
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLogger routes generation logs to logger. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxDepth bounds how deeply the input may nest. Values <= 0 disable the
// limit.
func WithMaxDepth(depth int) Option {
	return func(o *Orchestrator) {
		o.maxDepth = depth
	}
}

// Orchestrator runs parse, inference, layout and serialisation. It holds
// only configuration and is safe for concurrent use.
type Orchestrator struct {
	logger   *slog.Logger
	maxDepth int
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: jsonvalue.DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// Output holds the generated documents in structured and text form. The text
// form is two-space indented JSON.
type Output struct {
	Data         jsonvalue.Value
	Schema       schema.Root
	UISchema     uischema.Element
	SchemaJSON   string
	UISchemaJSON string
}

// Result is the wire form of a generation: either both schema texts or an
// error message, never both.
type Result struct {
	JSONSchema string `json:"jsonSchema,omitempty"`
	UISchema   string `json:"uiSchema,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Generate infers a JSON Schema from the sample document in text and lays
// out a UI schema for it. Input problems are reported as *Error.
func (o *Orchestrator) Generate(text string) (Output, error) {
	if infer.IsBlank(text) {
		return o.fail(&Error{Kind: KindEmptyInput})
	}

	data, err := jsonvalue.ParseString(text, jsonvalue.WithMaxDepth(o.maxDepth))
	if err != nil {
		return o.fail(&Error{Kind: KindParse, Err: err})
	}
	if !jsonvalue.IsObject(data) {
		return o.fail(&Error{Kind: KindShape})
	}

	root := infer.Infer(data)
	layout := uischema.Generate(&root.Schema)

	schemaJSON, err := schema.Pretty(root)
	if err != nil {
		return o.fail(fmt.Errorf("orchestrator: render schema: %w", err))
	}
	uiJSON, err := layout.Pretty()
	if err != nil {
		return o.fail(fmt.Errorf("orchestrator: render ui schema: %w", err))
	}

	o.logger.Debug("schemas generated",
		slog.Int("properties", len(layout.Elements)),
		slog.Int("input_bytes", len(text)),
	)
	return Output{
		Data:         data,
		Schema:       root,
		UISchema:     layout,
		SchemaJSON:   schemaJSON,
		UISchemaJSON: uiJSON,
	}, nil
}

// GenerateFromData is Generate in result form: failures are carried in
// Result.Error instead of being returned.
func (o *Orchestrator) GenerateFromData(text string) Result {
	out, err := o.Generate(text)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{JSONSchema: out.SchemaJSON, UISchema: out.UISchemaJSON}
}

// RegenerateUISchema lays out a UI schema for an existing JSON Schema
// document, such as one edited after generation. Documents without an
// object-valued "properties" member produce an empty layout.
func (o *Orchestrator) RegenerateUISchema(schemaText string) (string, error) {
	if infer.IsBlank(schemaText) {
		return o.failText(&Error{Kind: KindEmptyInput})
	}
	doc, err := jsonvalue.ParseString(schemaText, jsonvalue.WithMaxDepth(o.maxDepth))
	if err != nil {
		return o.failText(&Error{Kind: KindParse, Err: err})
	}
	out, err := uischema.GenerateFromDocument(doc).Pretty()
	if err != nil {
		return o.failText(fmt.Errorf("orchestrator: render ui schema: %w", err))
	}
	return out, nil
}

func (o *Orchestrator) fail(err error) (Output, error) {
	o.logFailure(err)
	return Output{}, err
}

func (o *Orchestrator) failText(err error) (string, error) {
	o.logFailure(err)
	return "", err
}

func (o *Orchestrator) logFailure(err error) {
	attrs := []any{slog.String("error", err.Error())}
	if e, ok := err.(*Error); ok {
		attrs = append(attrs, slog.String("kind", e.Kind.String()))
	}
	o.logger.Warn("schema generation failed", attrs...)
}

var defaultOrchestrator = New()

// GenerateFromData runs Orchestrator.GenerateFromData with default options.
func GenerateFromData(text string) Result {
	return defaultOrchestrator.GenerateFromData(text)
}
