package validator

import (
	"errors"
	"testing"
)

func TestCheck_Name(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"Google", true},
		{"Apple", true},
		{"Google Maps", true},
		{"GoogleMaps", true},
		{"Abcdefghij", true},
		{"Stack O", true},
		{"ab", false},
		{"Abc", false},
		{"Abcdefghijk", false},
		{"google", false},
		{"GOOGLE", false},
		{"New York", false},
		{"Google Maps Pro", false},
		{"Google  Maps", false},
		{"Goo9le", false},
		{"", false},
		// Separators a browser regex \s accepts.
		{"Google\u00a0Maps", true},
		{"Google\u3000Maps", true},
		{"Google\tMaps", true},
		{"Google\ufeffMaps", true},
		{"Google\u200bMaps", false},
	}
	for _, tc := range cases {
		err := Check(FieldName, tc.value)
		if (err == nil) != tc.ok {
			t.Errorf("Check(name, %q) err = %v, want ok=%v", tc.value, err, tc.ok)
		}
	}
}

func TestCheck_URL(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"apple.com", true},
		{"x.com", true},
		{"GOOGLE.COM", false},
		{"google.org", true},
		{"example.net", true},
		{"www.google.com", true},
		{"WWW.google.com", true},
		{"w.google.com", true},
		{"http://google.com", true},
		{"https://www.google.com", true},
		{"google.io", false},
		{"google.com/search", false},
		{"google.com?q=1", false},
		{"mail.google.com", false},
		{"my-site.com", false},
		{"ftp://google.com", false},
		{".com", false},
		{"", false},
	}
	for _, tc := range cases {
		err := Check(FieldURL, tc.value)
		if (err == nil) != tc.ok {
			t.Errorf("Check(url, %q) err = %v, want ok=%v", tc.value, err, tc.ok)
		}
	}
}

func TestCheck_ReportsField(t *testing.T) {
	err := Check(FieldURL, "nope")
	var ruleErr *RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("err = %v, want *RuleError", err)
	}
	if ruleErr.Field != FieldURL {
		t.Errorf("field = %s, want %s", ruleErr.Field, FieldURL)
	}
}

func TestCheck_UnknownField(t *testing.T) {
	if err := Check(Field(99), "Google"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestInput_ValidateSetsExclusiveMark(t *testing.T) {
	in := Input{Field: FieldName, Value: "Google"}
	if !in.Validate() {
		t.Fatal("Google should be valid")
	}
	if in.Mark != MarkValid || in.Mark.Class() != "is-valid" {
		t.Errorf("mark = %s", in.Mark)
	}

	in.Value = "ab"
	if in.Validate() {
		t.Fatal("ab should be invalid")
	}
	if in.Mark != MarkInvalid || in.Mark.Class() != "is-invalid" {
		t.Errorf("mark = %s", in.Mark)
	}
}

func TestInput_Clear(t *testing.T) {
	in := Input{Field: FieldURL, Value: "apple.com", Mark: MarkValid}
	in.Clear()
	if in.Value != "" || in.Mark != MarkNone || in.Mark.Class() != "" {
		t.Errorf("after clear = %+v", in)
	}
}
