package infer

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		input string
		want  schema.Format
	}{
		{"john.doe@example.com", schema.FormatEmail},
		{"a@b.c", schema.FormatEmail},
		{"notanemail", ""},
		{"@example.com", ""},
		{"user@", ""},
		{"user example.com", ""},
		{"user@example", ""},
		{"us er@example.com", ""},
		{"user x@example.com", ""},

		{"2024-01-15T10:30:00Z", schema.FormatDateTime},
		{"2024-01-15T10:30:00", schema.FormatDateTime},
		{"2024-01-15T10:30:00+05:30", schema.FormatDateTime},
		{"2024-01-15T10:30:00-08:00", schema.FormatDateTime},
		{"2024-01-15T10:30:00.123Z", ""},
		{"2024-01-15 10:30:00", ""},

		{"1990-05-15", schema.FormatDate},
		{"2024-02-31", schema.FormatDate},
		{"2024-13-45", ""},
		{"2024-00-10", ""},
		{"2024-01-00", ""},
		{"2024-01-32", ""},
		{"05/15/1990", schema.FormatDate},
		{"99/99/9999", schema.FormatDate},
		{"15-05-1990", schema.FormatDate},
		{"5/15/1990", ""},

		{"00123", ""},
		{"12345", ""},
		{"", ""},
		{"hello world", ""},
	}
	for _, tc := range cases {
		if got := DetectFormat(tc.input); got != tc.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestInfer_StringFormatOnProperty(t *testing.T) {
	root := Infer(mustParse(t, `{"email":"test@example.com","born":"1990-05-15","at":"2024-01-15T10:30:00Z","code":"00123"}`))
	want := map[string]schema.Format{
		"email": schema.FormatEmail,
		"born":  schema.FormatDate,
		"at":    schema.FormatDateTime,
		"code":  "",
	}
	for name, format := range want {
		prop, ok := root.Properties.Get(name)
		if !ok {
			t.Fatalf("property %s missing", name)
		}
		if prop.Type != schema.TypeString || prop.Format != format {
			t.Fatalf("%s: want string/%q, got %q/%q", name, format, prop.Type, prop.Format)
		}
	}
}

func TestIsBlank(t *testing.T) {
	cases := map[string]bool{
		"":                   true,
		" \t\n\r\v\f":       true,
		"\ufeff":             true,
		"\u00a0\u2028\u2029": true,
		"\u3000":             true,
		"\u0085":             false,
		" {} ":               false,
	}
	for input, want := range cases {
		if got := IsBlank(input); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", input, got, want)
		}
	}
}
