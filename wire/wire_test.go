package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/csstok/format"
	"github.com/signadot/csstok/token"
)

const sample = `@media screen { a#main.nav:hover > b[lang|="en"] { margin: -1.5em 10% 0; content: "\201C q"; background: url(a.png) } }
/* note */ <!-- 'bad
url(x y) -->`

func sampleTokens(t *testing.T) []token.Token {
	t.Helper()
	toks, err := token.Tokenize(nil, []byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	return toks
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		t.Run(f.String(), func(t *testing.T) {
			toks := sampleTokens(t)
			buf := bytes.NewBuffer(nil)
			if err := NewEncoder(buf, f).EncodeAll(toks); err != nil {
				t.Fatal(err)
			}
			dec, err := NewDecoder(buf, f)
			if err != nil {
				t.Fatal(err)
			}
			got, err := dec.DecodeAll()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(toks, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip_Payloads(t *testing.T) {
	inputs := []string{
		"\r\n",
		"\t \r",
		"a\fb",
		"'.inf'",
		"'yes' 'null' '~' '0x10' '1e3'",
		"url(true) 10e3x",
		"/*\x00*/",
		"/* a: b\n- c */",
		"'\\\n'",
		"#-- \"#\"",
		"'\u2028 \u00a0'",
	}
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		for _, in := range inputs {
			toks, err := token.Tokenize(nil, []byte(in))
			if err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			if err := NewEncoder(buf, f).EncodeAll(toks); err != nil {
				t.Fatalf("%s %q: %v", f, in, err)
			}
			dec, err := NewDecoder(buf, f)
			if err != nil {
				t.Fatal(err)
			}
			got, err := dec.DecodeAll()
			if err != nil {
				t.Fatalf("%s %q: %v", f, in, err)
			}
			if diff := cmp.Diff(toks, got); diff != "" {
				t.Errorf("%s %q (-want +got):\n%s", f, in, diff)
			}
		}
	}
}

func TestJSONRecord(t *testing.T) {
	toks, err := token.Tokenize(nil, []byte("10px"))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := NewEncoder(buf, format.JSONFormat).Encode(&toks[0]); err != nil {
		t.Fatal(err)
	}
	want := `{"v":1,"kind":"dimension","number":10,"int":true,"unit":"px","start":0,"end":4,"line":0,"col":0}` + "\n"
	if buf.String() != want {
		t.Errorf("got %s want %s", buf.String(), want)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10px", `dimension 10 int "px" @0:0`},
		{"#a", `hash "a" id @0:0`},
		{"!", `delim '!' @0:0`},
		{"  ", `whitespace "  " @0:0`},
		{"50%", `percentage 50 int @0:0`},
		{".5", `number 0.5 @0:0`},
		{";", `semicolon @0:0`},
		{"url(a b)", `bad-url "a b" @0:0`},
	}
	for _, tt := range tests {
		toks, err := token.Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if got := Text(&toks[0]); got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`{"v":2,"kind":"ident"}`, ErrVersion},
		{`{"v":1,"kind":"selector"}`, ErrKind},
		{`{"v":1,"kind":"number"}`, ErrKind},
		{`{"v":1,"kind":"delim","value":"ab"}`, ErrKind},
	}
	for _, tt := range tests {
		dec, err := NewDecoder(strings.NewReader(tt.in), format.JSONFormat)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := dec.Decode(); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.want)
		}
	}
	if _, err := NewDecoder(strings.NewReader(""), format.TextFormat); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
}
