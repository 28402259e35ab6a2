package eval

import (
	"testing"

	"github.com/signadot/csstok/token"
)

const src = `:root { --gap: 4px; } a { margin: 120px 2em; color: #fff; background: url(a b) }`

func TestFilter(t *testing.T) {
	toks, err := token.Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		expr string
		want []string
	}{
		{`kind == "dimension" && unit == "px" && number > 100`, []string{"120px"}},
		{`kind == "ident" && value startsWith "--"`, []string{"--gap"}},
		{`kind == "hash" && id`, []string{"#fff"}},
		{`bad(kind)`, []string{"url(a b)"}},
		{`kind == "dimension" && integer && line == 0 && col > 30 && col < 40`, []string{"120px"}},
		{`!trivia(kind) && raw == "{"`, []string{"{", "{"}},
	}
	for _, tt := range tests {
		f, err := Compile(tt.expr)
		if err != nil {
			t.Fatalf("%s: %v", tt.expr, err)
		}
		sel, err := f.Select(toks, []byte(src))
		if err != nil {
			t.Fatalf("%s: %v", tt.expr, err)
		}
		if len(sel) != len(tt.want) {
			t.Errorf("%s: got %d tokens want %d", tt.expr, len(sel), len(tt.want))
			continue
		}
		for i := range sel {
			if got := src[sel[i].Start:sel[i].End]; got != tt.want[i] {
				t.Errorf("%s: got %q want %q", tt.expr, got, tt.want[i])
			}
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, s := range []string{`kind + 1`, `nosuchfield == 1`, `kind ==`} {
		if _, err := Compile(s); err == nil {
			t.Errorf("%s: expected error", s)
		}
	}
}
