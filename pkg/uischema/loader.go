package uischema

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type elementFile struct {
	Type     string         `json:"type" yaml:"type"`
	Scope    string         `json:"scope" yaml:"scope"`
	Label    any            `json:"label" yaml:"label"`
	Text     string         `json:"text" yaml:"text"`
	Options  map[string]any `json:"options" yaml:"options"`
	Elements []elementFile  `json:"elements" yaml:"elements"`
}

// Parse reads a UI schema document in JSON or YAML. Free-text labels are
// stripped of markup; non-string labels (JSON Forms allows booleans and
// objects) are dropped.
func Parse(data []byte) (Element, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Element{}, fmt.Errorf("uischema: document is empty")
	}

	var doc elementFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = elementFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Element{}, fmt.Errorf("uischema: parse: invalid JSON or YAML: %w", err)
		}
	}
	return normaliseElement(doc, "#")
}

// LoadFS reads and parses the named UI schema file from fsys.
func LoadFS(fsys fs.FS, name string) (Element, error) {
	if fsys == nil {
		return Element{}, fmt.Errorf("uischema: fs is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Element{}, fmt.Errorf("uischema: read %s: %w", name, err)
	}
	el, err := Parse(data)
	if err != nil {
		return Element{}, fmt.Errorf("uischema: %s: %w", name, err)
	}
	return el, nil
}

func normaliseElement(raw elementFile, path string) (Element, error) {
	typ := strings.TrimSpace(raw.Type)
	if typ == "" {
		return Element{}, fmt.Errorf("uischema: element %s has no type", path)
	}
	el := Element{
		Type:    typ,
		Scope:   strings.TrimSpace(raw.Scope),
		Text:    sanitizeText(raw.Text),
		Options: cloneOptions(raw.Options),
	}
	if label, ok := raw.Label.(string); ok {
		el.Label = sanitizeText(label)
	}
	if typ == TypeControl && el.Scope == "" {
		return Element{}, fmt.Errorf("uischema: control %s has no scope", path)
	}
	if len(raw.Elements) > 0 {
		el.Elements = make([]Element, 0, len(raw.Elements))
		for idx, child := range raw.Elements {
			normalised, err := normaliseElement(child, path+"/elements/"+strconv.Itoa(idx))
			if err != nil {
				return Element{}, err
			}
			el.Elements = append(el.Elements, normalised)
		}
	} else if el.IsLayout() {
		el.Elements = []Element{}
	}
	return el, nil
}

func cloneOptions(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
