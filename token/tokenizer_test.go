package token

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignorePos = cmpopts.IgnoreFields(Token{}, "Start", "End", "Line", "Col")

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func TestTokenizer_Empty(t *testing.T) {
	tk, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		tok := tk.Next()
		if tok.Type != TEOF {
			t.Fatalf("call %d: got %s, want TEOF", i, tok.Type)
		}
		if tok.Start != 0 || tok.End != 0 {
			t.Errorf("call %d: got span [%d,%d)", i, tok.Start, tok.End)
		}
	}
}

func TestTokenizer_EOFIdempotent(t *testing.T) {
	tk, err := New("a{b:c}")
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for tk.Next().Type != TEOF {
		n++
		if n > 100 {
			t.Fatal("no EOF")
		}
	}
	if n != 6 {
		t.Errorf("got %d tokens, want 6", n)
	}
	for i := 0; i < 3; i++ {
		tok := tk.Next()
		if tok.Type != TEOF || tok.Start != 6 {
			t.Errorf("got %s, want TEOF at 6", tok.Info())
		}
	}
}

func TestTokenize(t *testing.T) {
	ws := func(s string) Token { return Token{Type: TWhitespace, Value: s} }
	delim := func(r rune) Token { return Token{Type: TDelim, Delim: r, Value: string(r)} }
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{name: "comment", in: "/* comment */", want: []Token{
			{Type: TComment, Value: " comment "},
		}},
		{name: "comment not nested", in: "/* /* */ */", want: []Token{
			{Type: TComment, Value: " /* "},
			ws(" "),
			delim('*'),
			delim('/'),
		}},
		{name: "unterminated comment", in: "/* abc", want: []Token{
			{Type: TComment, Value: " abc"},
		}},
		{name: "dimension", in: "10px", want: []Token{
			{Type: TDimension, Number: 10, IsInt: true, Unit: "px"},
		}},
		{name: "unterminated string", in: "'unterminated", want: []Token{
			{Type: TBadString, Value: "unterminated"},
		}},
		{name: "at keyword", in: "@media", want: []Token{
			{Type: TAtKeyword, Value: "media"},
		}},
		{name: "hex escape", in: `\41 `, want: []Token{
			{Type: TIdent, Value: "A"},
		}},
		{name: "literal escape", in: `a\.b`, want: []Token{
			{Type: TIdent, Value: "a.b"},
		}},
		{name: "zero escape", in: `\0 x`, want: []Token{
			{Type: TIdent, Value: "�x"},
		}},
		{name: "surrogate escape", in: `\d800`, want: []Token{
			{Type: TIdent, Value: "�"},
		}},
		{name: "escape at eof", in: `a\`, want: []Token{
			{Type: TIdent, Value: "a�"},
		}},
		{name: "backslash newline", in: "\\\n", want: []Token{
			delim('\\'),
			ws("\n"),
		}},
		{name: "string", in: `"a\"b"`, want: []Token{
			{Type: TString, Value: `a"b`},
		}},
		{name: "string escaped newline", in: "'a\\\nb'", want: []Token{
			{Type: TString, Value: "ab"},
		}},
		{name: "string raw newline", in: "\"ab\ncd", want: []Token{
			{Type: TBadString, Value: "ab"},
			ws("\n"),
			{Type: TIdent, Value: "cd"},
		}},
		{name: "string backslash eof", in: `"a\`, want: []Token{
			{Type: TBadString, Value: "a"},
		}},
		{name: "url", in: "url(foo.png)", want: []Token{
			{Type: TURL, Value: "foo.png"},
		}},
		{name: "url case and space", in: "URL(  a\\)b  )", want: []Token{
			{Type: TURL, Value: "a)b"},
		}},
		{name: "url eof", in: "url(abc", want: []Token{
			{Type: TURL, Value: "abc"},
		}},
		{name: "url quoted", in: "url( 'a' )", want: []Token{
			{Type: TFunction, Value: "url"},
			ws(" "),
			{Type: TString, Value: "a"},
			ws(" "),
			{Type: TRParen},
		}},
		{name: "bad url space", in: "url(a b) x", want: []Token{
			{Type: TBadURL, Value: "a b"},
			ws(" "),
			{Type: TIdent, Value: "x"},
		}},
		{name: "bad url quote", in: `url(a"b)`, want: []Token{
			{Type: TBadURL, Value: `a"b`},
		}},
		{name: "bad url line end", in: "url(a(b\nc)", want: []Token{
			{Type: TBadURL, Value: "a(b"},
			ws("\n"),
			{Type: TIdent, Value: "c"},
			{Type: TRParen},
		}},
		{name: "bad url space then line end", in: "url(a \nb;c\nd)", want: []Token{
			{Type: TBadURL, Value: "a "},
			ws("\n"),
			{Type: TIdent, Value: "b"},
			{Type: TSemicolon},
			{Type: TIdent, Value: "c"},
			ws("\n"),
			{Type: TIdent, Value: "d"},
			{Type: TRParen},
		}},
		{name: "url trailing line end", in: "url(a\n)", want: []Token{
			{Type: TURL, Value: "a"},
		}},
		{name: "function", in: "rgb(1,2.5)", want: []Token{
			{Type: TFunction, Value: "rgb"},
			{Type: TNumber, Number: 1, IsInt: true},
			{Type: TComma},
			{Type: TNumber, Number: 2.5},
			{Type: TRParen},
		}},
		{name: "hash id", in: "#fff", want: []Token{
			{Type: THash, Value: "fff", HashID: true},
		}},
		{name: "hash unrestricted", in: "#123", want: []Token{
			{Type: THash, Value: "123"},
		}},
		{name: "hash delim", in: "# a", want: []Token{
			delim('#'),
			ws(" "),
			{Type: TIdent, Value: "a"},
		}},
		{name: "numbers", in: "+.5 -10% 1e3 1e 2E-2", want: []Token{
			{Type: TNumber, Number: 0.5},
			ws(" "),
			{Type: TPercentage, Number: -10, IsInt: true},
			ws(" "),
			{Type: TNumber, Number: 1000},
			ws(" "),
			{Type: TDimension, Number: 1, IsInt: true, Unit: "e"},
			ws(" "),
			{Type: TNumber, Number: 0.02},
		}},
		{name: "number dot", in: "1.", want: []Token{
			{Type: TNumber, Number: 1, IsInt: true},
			delim('.'),
		}},
		{name: "signs", in: "- + --x -y", want: []Token{
			delim('-'),
			ws(" "),
			delim('+'),
			ws(" "),
			{Type: TIdent, Value: "--x"},
			ws(" "),
			{Type: TIdent, Value: "-y"},
		}},
		{name: "cdo cdc", in: "<!-- -->", want: []Token{
			{Type: TCDO},
			ws(" "),
			{Type: TCDC},
		}},
		{name: "structural", in: "[]{}():;,", want: []Token{
			{Type: TLSquare}, {Type: TRSquare},
			{Type: TLCurl}, {Type: TRCurl},
			{Type: TLParen}, {Type: TRParen},
			{Type: TColon}, {Type: TSemicolon}, {Type: TComma},
		}},
		{name: "matches", in: "~=|=^=$=*=*", want: []Token{
			{Type: TIncludeMatch}, {Type: TDashMatch}, {Type: TPrefixMatch},
			{Type: TSuffixMatch}, {Type: TSubstringMatch}, delim('*'),
		}},
		{name: "at delim", in: "@1", want: []Token{
			delim('@'),
			{Type: TNumber, Number: 1, IsInt: true},
		}},
		{name: "non ascii ident", in: "été", want: []Token{
			{Type: TIdent, Value: "été"},
		}},
		{name: "nul", in: "a\x00", want: []Token{
			{Type: TIdent, Value: "a�"},
		}},
		{name: "crlf whitespace", in: "a\r\n\fb", want: []Token{
			{Type: TIdent, Value: "a"},
			ws("\r\n\f"),
			{Type: TIdent, Value: "b"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustTokenize(t, tt.in)
			if diff := cmp.Diff(tt.want, got, ignorePos); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var coverageInputs = []string{
	"",
	"a { color: red; }",
	"@media (min-width: 10px) { .x > #y::before { content: '\\201C' } }",
	"url(  x.png ) url(a b) url( \"q\" )",
	"/* c */ <!-- --> -->",
	"'bad\n\"also bad",
	"\\\n\\41 \\",
	"1e3 .5 +1 -2.5e-3% 10px 3em",
	"a\r\nb\rc\fd",
	"été ✓ 日本語 {}",
	"#a #1 # ~= |= ^= $= *= || ",
	"url(a\\",
	"\"a\\",
}

func TestTokenize_LosslessCoverage(t *testing.T) {
	for _, in := range coverageInputs {
		tk, err := New(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		var b strings.Builder
		off := 0
		for tok := range tk.All() {
			if tok.Start != off {
				t.Errorf("%q: %s starts at %d, want %d", in, tok.Info(), tok.Start, off)
			}
			if tok.End <= tok.Start {
				t.Errorf("%q: empty token %s", in, tok.Info())
			}
			b.Write(tk.Raw(&tok))
			off = tok.End
		}
		if b.String() != in {
			t.Errorf("got %q, want %q", b.String(), in)
		}
	}
}

func TestTokenize_LineCol(t *testing.T) {
	for _, in := range coverageInputs {
		tk, err := New(in)
		if err != nil {
			t.Fatal(err)
		}
		for tok := range tk.All() {
			l, c := tk.PosDoc().LineCol(tok.Start)
			if l != tok.Line || c != tok.Col {
				t.Errorf("%q: %s: posdoc says %d:%d", in, tok.Info(), l, c)
			}
		}
	}
}

func TestTokenize_Positions(t *testing.T) {
	toks := mustTokenize(t, "a\r\n  bé c")
	want := [][2]int{{0, 0}, {0, 1}, {1, 2}, {1, 4}, {1, 5}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Line != want[i][0] || tok.Col != want[i][1] {
			t.Errorf("token %d %s: want %d:%d", i, tok.Info(), want[i][0], want[i][1])
		}
	}
}

func TestNew_BadUTF8(t *testing.T) {
	_, err := New("a {\n b\xff }")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrBadUTF8) {
		t.Errorf("got %v, want ErrBadUTF8", err)
	}
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("got %T", err)
	}
	if te.Pos.I != 6 || te.Pos.Line() != 1 || te.Pos.Col() != 2 {
		t.Errorf("got pos %s", te.Pos.String())
	}
}

func TestNewFromReader(t *testing.T) {
	tk, err := NewFromReader(strings.NewReader("a b"), TokenName("x.css"))
	if err != nil {
		t.Fatal(err)
	}
	if tk.PosDoc().Name() != "x.css" {
		t.Errorf("got name %q", tk.PosDoc().Name())
	}
	n := 0
	for range tk.All() {
		n++
	}
	if n != 3 {
		t.Errorf("got %d tokens, want 3", n)
	}
}

func TestTokenizer_Reset(t *testing.T) {
	tk, err := New("a b")
	if err != nil {
		t.Fatal(err)
	}
	first := tk.Next()
	for tk.Next().Type != TEOF {
	}
	if !tk.AtEOF() {
		t.Error("expected AtEOF")
	}
	tk.Reset()
	if again := tk.Next(); !cmp.Equal(first, again) {
		t.Errorf("got %s after reset, want %s", again.Info(), first.Info())
	}
}

func TestTokenizer_BadErr(t *testing.T) {
	tk, err := New("a 'b\nurl(c d)", TokenName("t.css"))
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	for tok := range tk.All() {
		if err := tk.BadErr(&tok); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if !errors.Is(errs[0], ErrBadString) || !errors.Is(errs[1], ErrBadURL) {
		t.Errorf("got %v", errs)
	}
	if !strings.HasPrefix(errs[1].Error(), "bad url at t.css:2:1") {
		t.Errorf("got %q", errs[1].Error())
	}
}

func TestTokenize_NumberClamp(t *testing.T) {
	toks := mustTokenize(t, "1e400 -1e400")
	if toks[0].Number != math.MaxFloat64 || toks[2].Number != -math.MaxFloat64 {
		t.Errorf("got %v %v", toks[0].Number, toks[2].Number)
	}
}
