package infer

import (
	"reflect"
	"sort"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Infer returns the root schema describing value.
func Infer(value jsonvalue.Value) schema.Root {
	return schema.NewRoot(Fragment(value))
}

// Fragment returns the schema fragment for value without the dialect stamp.
func Fragment(value jsonvalue.Value) *schema.Schema {
	switch v := value.(type) {
	case jsonvalue.Null:
		return &schema.Schema{Type: schema.TypeNull}
	case jsonvalue.Array:
		return arraySchema(v)
	case *jsonvalue.Object:
		if v == nil {
			return &schema.Schema{Type: schema.TypeNull}
		}
		return objectSchema(v)
	case jsonvalue.String:
		return stringSchema(string(v))
	case jsonvalue.Number:
		return &schema.Schema{Type: schema.TypeNumber}
	case jsonvalue.Bool:
		return &schema.Schema{Type: schema.TypeBoolean}
	default:
		return &schema.Schema{Type: schema.TypeString}
	}
}

func objectSchema(obj *jsonvalue.Object) *schema.Schema {
	props := schema.NewProperties()
	obj.Range(func(key string, value jsonvalue.Value) bool {
		props.Set(key, Fragment(value))
		return true
	})
	return &schema.Schema{Type: schema.TypeObject, Properties: props}
}

func arraySchema(items jsonvalue.Array) *schema.Schema {
	if len(items) == 0 {
		return &schema.Schema{Type: schema.TypeArray, Items: &schema.Schema{}}
	}

	first := Fragment(items[0])
	if len(items) == 1 || first.Type != schema.TypeObject {
		return &schema.Schema{Type: schema.TypeArray, Items: first}
	}

	merged := schema.NewProperties()
	for _, item := range items {
		obj, ok := item.(*jsonvalue.Object)
		if !ok || obj == nil {
			continue
		}
		merged.Merge(objectSchema(obj).Properties)
	}
	return &schema.Schema{
		Type:  schema.TypeArray,
		Items: &schema.Schema{Type: schema.TypeObject, Properties: merged},
	}
}

func stringSchema(value string) *schema.Schema {
	return &schema.Schema{Type: schema.TypeString, Format: DetectFormat(value)}
}

// InferAny is Infer for values already decoded into Go types. Maps are walked
// in sorted key order since Go maps carry none. Kinds with no JSON
// counterpart are described as strings.
func InferAny(value any) schema.Root {
	return Infer(FromAny(value))
}

// numberLiteral is satisfied by json.Number from both go-json and
// encoding/json.
type numberLiteral interface {
	Float64() (float64, error)
	String() string
}

// FromAny converts decoded Go values into a jsonvalue.Value. Number types
// from go-json and encoding/json (anything with Float64 and String methods)
// keep their literal text. Kinds with no JSON counterpart convert to a nil
// Value.
func FromAny(value any) jsonvalue.Value {
	switch v := value.(type) {
	case nil:
		return jsonvalue.Null{}
	case jsonvalue.Value:
		return v
	case bool:
		return jsonvalue.Bool(v)
	case string:
		return jsonvalue.String(v)
	case numberLiteral:
		return jsonvalue.Number(v.String())
	case []any:
		arr := make(jsonvalue.Array, 0, len(v))
		for _, item := range v {
			arr = append(arr, FromAny(item))
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := jsonvalue.NewObject()
		for _, key := range keys {
			obj.Set(key, FromAny(v[key]))
		}
		return obj
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		raw, err := json.Marshal(value)
		if err != nil {
			return nil
		}
		return jsonvalue.Number(raw)
	default:
		return nil
	}
}
