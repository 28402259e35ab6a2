package token

import (
	"io"
	"unicode/utf8"
)

// eof is returned by lookahead past the end of the source.
const eof rune = -1

type cursor struct {
	off       int
	line, col int
}

// Tokenizer scans CSS source one token at a time. A Tokenizer owns its
// source buffer and is not safe for concurrent use; independent
// Tokenizers share no state.
type Tokenizer struct {
	src    []byte
	cur    cursor
	posDoc *PosDoc
	opt    *tokenOpts
}

// New creates a Tokenizer over src.
func New(src string, opts ...TokenOpt) (*Tokenizer, error) {
	return NewFromBytes([]byte(src), opts...)
}

// NewFromBytes creates a Tokenizer over a copy of src. It fails only
// if src is not valid UTF-8.
func NewFromBytes(src []byte, opts ...TokenOpt) (*Tokenizer, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	d := make([]byte, len(src))
	copy(d, src)
	posDoc := NewPosDoc(opt.name, d)
	if !utf8.Valid(d) {
		return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(invalidUTF8(d)))
	}
	return &Tokenizer{
		src:    d,
		posDoc: posDoc,
		opt:    opt,
	}, nil
}

// NewFromReader reads r to the end and creates a Tokenizer over the
// result.
func NewFromReader(r io.Reader, opts ...TokenOpt) (*Tokenizer, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(d, opts...)
}

func invalidUTF8(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i
		}
		i += sz
	}
	return i
}

// Source returns the source buffer. It must not be modified.
func (t *Tokenizer) Source() []byte {
	return t.src
}

// PosDoc returns the position index of the source.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// Pos returns the current position of the cursor.
func (t *Tokenizer) Pos() *Pos {
	return t.posDoc.Pos(t.cur.off)
}

// Raw returns the source bytes consumed by tok.
func (t *Tokenizer) Raw(tok *Token) []byte {
	return t.src[tok.Start:tok.End]
}

// Reset moves the cursor back to the start of the source.
func (t *Tokenizer) Reset() {
	t.cur = cursor{}
}

// AtEOF reports whether all the source has been consumed.
func (t *Tokenizer) AtEOF() bool {
	return t.cur.off >= len(t.src)
}

// at decodes the code point at byte offset off, returning it along
// with its width. Line terminators ("\r\n", "\r", "\f") read as '\n'
// and U+0000 reads as U+FFFD. At the end of the source it returns
// (eof, 0).
func (t *Tokenizer) at(off int) (rune, int) {
	if off >= len(t.src) {
		return eof, 0
	}
	c := t.src[off]
	switch c {
	case '\r':
		if off+1 < len(t.src) && t.src[off+1] == '\n' {
			return '\n', 2
		}
		return '\n', 1
	case '\f':
		return '\n', 1
	case 0:
		return utf8.RuneError, 1
	}
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(t.src[off:])
}

// peek returns the code point n positions ahead of the cursor.
func (t *Tokenizer) peek(n int) rune {
	off := t.cur.off
	for ; n > 0; n-- {
		_, sz := t.at(off)
		if sz == 0 {
			return eof
		}
		off += sz
	}
	r, _ := t.at(off)
	return r
}

// advance consumes one code point and returns it.
func (t *Tokenizer) advance() rune {
	r, sz := t.at(t.cur.off)
	if sz == 0 {
		return eof
	}
	t.cur.off += sz
	if r == '\n' {
		t.cur.line++
		t.cur.col = 0
	} else {
		t.cur.col++
	}
	return r
}

func (t *Tokenizer) advanceN(n int) {
	for ; n > 0; n-- {
		t.advance()
	}
}

func (t *Tokenizer) reset(c cursor) {
	t.cur = c
}

func (t *Tokenizer) token(start cursor, tok Token) Token {
	tok.Start = start.off
	tok.End = t.cur.off
	tok.Line = start.line
	tok.Col = start.col
	return tok
}

func (t *Tokenizer) punct(start cursor, tt TokenType, n int) Token {
	t.advanceN(n)
	return t.token(start, Token{Type: tt})
}

func (t *Tokenizer) delim(start cursor) Token {
	r := t.advance()
	return t.token(start, Token{Type: TDelim, Delim: r, Value: string(r)})
}

// Next consumes exactly one token and returns it. At the end of the
// source it returns a TEOF token, and keeps doing so on every
// subsequent call.
func (t *Tokenizer) Next() Token {
	start := t.cur
	c := t.peek(0)
	switch c {
	case eof:
		return t.token(start, Token{Type: TEOF})
	case ' ', '\t', '\n':
		for isWhitespace(t.peek(0)) {
			t.advance()
		}
		return t.token(start, Token{
			Type:  TWhitespace,
			Value: string(t.src[start.off:t.cur.off]),
		})
	case '"', '\'':
		return t.quoted(start, c)
	case '#':
		if isNameCodePoint(t.peek(1)) || t.validEscape(1) {
			t.advance()
			id := t.startsIdent(0)
			return t.token(start, Token{Type: THash, Value: t.name(), HashID: id})
		}
		return t.delim(start)
	case '(':
		return t.punct(start, TLParen, 1)
	case ')':
		return t.punct(start, TRParen, 1)
	case '[':
		return t.punct(start, TLSquare, 1)
	case ']':
		return t.punct(start, TRSquare, 1)
	case '{':
		return t.punct(start, TLCurl, 1)
	case '}':
		return t.punct(start, TRCurl, 1)
	case ',':
		return t.punct(start, TComma, 1)
	case ':':
		return t.punct(start, TColon, 1)
	case ';':
		return t.punct(start, TSemicolon, 1)
	case '+', '.':
		if t.startsNumber(0) {
			return t.numeric(start)
		}
		return t.delim(start)
	case '-':
		switch {
		case t.startsNumber(0):
			return t.numeric(start)
		case t.peek(1) == '-' && t.peek(2) == '>':
			return t.punct(start, TCDC, 3)
		case t.startsIdent(0):
			return t.identLike(start)
		}
		return t.delim(start)
	case '<':
		if t.peek(1) == '!' && t.peek(2) == '-' && t.peek(3) == '-' {
			return t.punct(start, TCDO, 4)
		}
		return t.delim(start)
	case '@':
		if t.startsIdent(1) {
			t.advance()
			return t.token(start, Token{Type: TAtKeyword, Value: t.name()})
		}
		return t.delim(start)
	case '/':
		if t.peek(1) == '*' {
			return t.comment(start)
		}
		return t.delim(start)
	case '\\':
		if t.validEscape(0) {
			return t.identLike(start)
		}
		return t.delim(start)
	case '~', '|', '^', '$', '*':
		if t.peek(1) == '=' {
			return t.punct(start, matchTypes[c], 2)
		}
		return t.delim(start)
	}
	switch {
	case isDigit(c):
		return t.numeric(start)
	case isNameStart(c):
		return t.identLike(start)
	}
	return t.delim(start)
}

var matchTypes = map[rune]TokenType{
	'~': TIncludeMatch,
	'|': TDashMatch,
	'^': TPrefixMatch,
	'$': TSuffixMatch,
	'*': TSubstringMatch,
}

func (t *Tokenizer) comment(start cursor) Token {
	t.advanceN(2)
	from := t.cur.off
	for {
		switch t.peek(0) {
		case eof:
			return t.token(start, Token{Type: TComment, Value: string(t.src[from:t.cur.off])})
		case '*':
			if t.peek(1) == '/' {
				to := t.cur.off
				t.advanceN(2)
				return t.token(start, Token{Type: TComment, Value: string(t.src[from:to])})
			}
		}
		t.advance()
	}
}
