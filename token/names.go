package token

import (
	"strings"
	"unicode/utf8"
)

const maxCodePoint = 0x10FFFF

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) rune {
	switch {
	case isDigit(r):
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

func isNameStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r >= utf8.RuneSelf
}

func isNameCodePoint(r rune) bool {
	return isNameStart(r) || isDigit(r) || r == '-'
}

func isNonPrintable(r rune) bool {
	return (r >= 0 && r <= 0x08) || r == 0x0B || (r >= 0x0E && r <= 0x1F) || r == 0x7F
}

// validEscape reports whether the code points n and n+1 ahead form an
// escape. A backslash at the end of the source is an escape.
func (t *Tokenizer) validEscape(n int) bool {
	return t.peek(n) == '\\' && t.peek(n+1) != '\n'
}

// startsIdent reports whether the code points n ahead would start an
// identifier.
func (t *Tokenizer) startsIdent(n int) bool {
	switch c := t.peek(n); {
	case c == '-':
		c1 := t.peek(n + 1)
		return isNameStart(c1) || c1 == '-' || t.validEscape(n+1)
	case c == '\\':
		return t.validEscape(n)
	default:
		return isNameStart(c)
	}
}

// escape consumes an escape whose backslash has already been consumed
// and returns the code point it denotes.
func (t *Tokenizer) escape() rune {
	c := t.advance()
	switch {
	case c == eof:
		return utf8.RuneError
	case isHexDigit(c):
		v := hexValue(c)
		for i := 1; i < 6 && isHexDigit(t.peek(0)); i++ {
			v = v<<4 | hexValue(t.advance())
		}
		if isWhitespace(t.peek(0)) {
			t.advance()
		}
		if v == 0 || v > maxCodePoint || (v >= 0xD800 && v <= 0xDFFF) {
			return utf8.RuneError
		}
		return v
	default:
		return c
	}
}

// name consumes a name, decoding escapes.
func (t *Tokenizer) name() string {
	var b strings.Builder
	for {
		c := t.peek(0)
		switch {
		case isNameCodePoint(c):
			b.WriteRune(t.advance())
		case t.validEscape(0):
			t.advance()
			b.WriteRune(t.escape())
		default:
			return b.String()
		}
	}
}

func (t *Tokenizer) identLike(start cursor) Token {
	name := t.name()
	if t.peek(0) != '(' {
		return t.token(start, Token{Type: TIdent, Value: name})
	}
	t.advance()
	if !strings.EqualFold(name, "url") {
		return t.token(start, Token{Type: TFunction, Value: name})
	}
	args := t.cur
	for isWhitespace(t.peek(0)) {
		t.advance()
	}
	if c := t.peek(0); c == '"' || c == '\'' {
		// url("...") is a function; leave the whitespace to its own token.
		t.reset(args)
		return t.token(start, Token{Type: TFunction, Value: name})
	}
	return t.url(start, args.off)
}

// url consumes the remainder of an unquoted url after "url(" and any
// leading whitespace. from is the offset just after the '('.
func (t *Tokenizer) url(start cursor, from int) Token {
	var b strings.Builder
	for {
		c := t.peek(0)
		switch {
		case c == ')':
			t.advance()
			return t.token(start, Token{Type: TURL, Value: b.String()})
		case c == eof:
			return t.token(start, Token{Type: TURL, Value: b.String()})
		case isWhitespace(c):
			ws := t.cur
			for isWhitespace(t.peek(0)) {
				t.advance()
			}
			switch t.peek(0) {
			case ')':
				t.advance()
				return t.token(start, Token{Type: TURL, Value: b.String()})
			case eof:
				return t.token(start, Token{Type: TURL, Value: b.String()})
			}
			// badURL must see any line end in the run.
			t.reset(ws)
			return t.badURL(start, from)
		case c == '"' || c == '\'' || c == '(' || isNonPrintable(c):
			return t.badURL(start, from)
		case c == '\\':
			if !t.validEscape(0) {
				return t.badURL(start, from)
			}
			t.advance()
			b.WriteRune(t.escape())
		default:
			b.WriteRune(t.advance())
		}
	}
}

// badURL skips to the closing ')' or to a line end, whichever comes
// first, and returns a TBadURL whose value is the raw text after
// "url(".
func (t *Tokenizer) badURL(start cursor, from int) Token {
	for {
		c := t.peek(0)
		switch {
		case c == eof, c == '\n':
			return t.token(start, Token{Type: TBadURL, Value: string(t.src[from:t.cur.off])})
		case c == ')':
			to := t.cur.off
			t.advance()
			return t.token(start, Token{Type: TBadURL, Value: string(t.src[from:to])})
		case t.validEscape(0):
			t.advance()
			t.escape()
		default:
			t.advance()
		}
	}
}
