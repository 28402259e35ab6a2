package token

import "strings"

// quoted consumes a string delimited by q. A raw line end or the end
// of the source before the closing quote makes a TBadString; the line
// end is left for the next token.
func (t *Tokenizer) quoted(start cursor, q rune) Token {
	t.advance()
	var b strings.Builder
	for {
		c := t.peek(0)
		switch c {
		case q:
			t.advance()
			return t.token(start, Token{Type: TString, Value: b.String()})
		case eof, '\n':
			return t.token(start, Token{Type: TBadString, Value: b.String()})
		case '\\':
			switch t.peek(1) {
			case eof:
				t.advance()
			case '\n':
				// escaped line end continues the string
				t.advanceN(2)
			default:
				t.advance()
				b.WriteRune(t.escape())
			}
		default:
			b.WriteRune(t.advance())
		}
	}
}
