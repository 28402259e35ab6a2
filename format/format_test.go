package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"t": TextFormat, "text": TextFormat,
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if !f.IsYAML() || f.String() != "yaml" {
		t.Errorf("got %s", f)
	}
	if Format(7).String() == "" {
		t.Error("expected error text")
	}
}
