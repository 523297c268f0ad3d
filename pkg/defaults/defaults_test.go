package defaults

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/uischema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"contact", "blank"}, Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_ContactForm(t *testing.T) {
	tpl := Default()
	if tpl.Title != "Contact Form" {
		t.Fatalf("title = %q", tpl.Title)
	}

	layout, err := uischema.Parse([]byte(tpl.UISchema))
	if err != nil {
		t.Fatalf("parse ui schema: %v", err)
	}
	if len(layout.Elements) != 6 || layout.Elements[3].Type != uischema.TypeHorizontalLayout {
		t.Fatalf("unexpected layout: %#v", layout)
	}

	want := []string{
		"#/properties/firstName",
		"#/properties/lastName",
		"#/properties/email",
		"#/properties/age",
		"#/properties/birthdate",
		"#/properties/country",
		"#/properties/subscribe",
	}
	if diff := cmp.Diff(want, uischema.Scopes(layout)); diff != "" {
		t.Fatalf("scopes mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplates_AreConsistent(t *testing.T) {
	for _, name := range Names() {
		tpl, err := Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		if res := validation.ValidateUISchema(tpl.JSONSchema, tpl.UISchema); !res.Valid {
			t.Fatalf("%s: ui schema issues %#v", name, res.Issues)
		}
		if res := validation.ValidateData(tpl.JSONSchema, tpl.Data); !res.Valid {
			t.Fatalf("%s: data issues %#v", name, res.Issues)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Fatal("expected error for unknown template")
	}
	tpl, err := Lookup(" Contact ")
	if err != nil || tpl.Name != "contact" {
		t.Fatalf("Lookup normalises names: %#v, %v", tpl, err)
	}
}
