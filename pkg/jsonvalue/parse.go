package jsonvalue

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultMaxDepth bounds container nesting accepted by Parse.
const DefaultMaxDepth = 512

// ErrMaxDepth is returned when the input nests deeper than the configured
// limit.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// ParseOption customises Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxDepth int
}

// WithMaxDepth overrides DefaultMaxDepth. Values <= 0 disable the check.
func WithMaxDepth(depth int) ParseOption {
	return func(cfg *parseConfig) {
		cfg.maxDepth = depth
	}
}

// Parse decodes a single JSON document. Syntax errors are reported with the
// decoder's diagnostic message unchanged.
func Parse(data []byte, options ...ParseOption) (Value, error) {
	cfg := parseConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	// The token stream skips separators without checking them, and go-json's
	// own validator accepts leading zeros, a trailing dot and raw control
	// characters in strings. encoding/json checks the grammar strictly and,
	// into a RawMessage, never range-checks numbers.
	var raw stdjson.RawMessage
	if err := stdjson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &tokenParser{dec: dec, maxDepth: cfg.maxDepth}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.fromToken(tok, 0)
}

// ParseString is Parse for string input.
func ParseString(text string, options ...ParseOption) (Value, error) {
	return Parse([]byte(text), options...)
}

type tokenParser struct {
	dec      *json.Decoder
	maxDepth int
}

func (p *tokenParser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (p *tokenParser) fromToken(tok json.Token, depth int) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		// The decoder may alias its read buffer for number literals.
		return Number(strings.Clone(string(t))), nil
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case json.Delim:
		switch t {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (p *tokenParser) checkDepth(depth int) error {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return fmt.Errorf("%w (limit %d)", ErrMaxDepth, p.maxDepth)
	}
	return nil
}

func (p *tokenParser) object(depth int) (Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return nil, err
	}
	obj := NewObject()
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		value, err := p.fromToken(tok, depth)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
}

func (p *tokenParser) array(depth int) (Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return nil, err
	}
	arr := Array{}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return arr, nil
		}
		value, err := p.fromToken(tok, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
}
