package wire

import (
	"strconv"
	"strings"

	"github.com/signadot/csstok/token"
)

// Text renders tok on one line as its kind name, its payload and its
// position, eg
//
//	dimension 10 int "px" @3:7
func Text(tok *token.Token) string {
	var b strings.Builder
	b.WriteString(tok.Type.Name())
	switch tok.Type {
	case token.TIdent, token.TFunction, token.TAtKeyword,
		token.TString, token.TBadString, token.TURL, token.TBadURL,
		token.TComment, token.TWhitespace:
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(tok.Value))
	case token.THash:
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(tok.Value))
		if tok.HashID {
			b.WriteString(" id")
		}
	case token.TDelim:
		b.WriteByte(' ')
		b.WriteString(strconv.QuoteRune(tok.Delim))
	case token.TNumber, token.TPercentage, token.TDimension:
		b.WriteByte(' ')
		b.WriteString(token.FormatNumber(tok.Number, tok.IsInt))
		if tok.IsInt {
			b.WriteString(" int")
		}
		if tok.Type == token.TDimension {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(tok.Unit))
		}
	}
	b.WriteString(" @")
	b.WriteString(strconv.Itoa(tok.Line))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(tok.Col))
	return b.String()
}
