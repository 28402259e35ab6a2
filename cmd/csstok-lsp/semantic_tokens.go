package main

import (
	"context"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/signadot/csstok/encode"
	"github.com/signadot/csstok/token"
)

// semanticTokenTypes is the legend; indices are the encoded types.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenFunction,
	protocol.SemanticTokenVariable,
}

var semanticTokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDeprecated,
}

const badModifier = 1 << 0

var semanticTypeIndex = func() map[protocol.SemanticTokenTypes]uint32 {
	m := make(map[protocol.SemanticTokenTypes]uint32, len(semanticTokenTypes))
	for i, tt := range semanticTokenTypes {
		m[tt] = uint32(i)
	}
	return m
}()

// semanticType maps a color attribute to a legend type. ok is false
// for attributes that are not highlighted.
func semanticType(attr encode.ColorAttr) (protocol.SemanticTokenTypes, bool) {
	switch attr {
	case encode.CommentColor:
		return protocol.SemanticTokenComment, true
	case encode.KeywordColor:
		return protocol.SemanticTokenKeyword, true
	case encode.StringColor, encode.BadColor:
		return protocol.SemanticTokenString, true
	case encode.NumberColor:
		return protocol.SemanticTokenNumber, true
	case encode.SepColor, encode.DelimColor:
		return protocol.SemanticTokenOperator, true
	case encode.IdentColor:
		return protocol.SemanticTokenProperty, true
	case encode.FunctionColor:
		return protocol.SemanticTokenFunction, true
	case encode.HashColor:
		return protocol.SemanticTokenVariable, true
	}
	return "", false
}

type semToken struct {
	line, char, length uint32
	typ, mods          uint32
}

// lineSpans splits the token's span into one piece per source line,
// columns and lengths in code points.
func lineSpans(src []byte, tok *token.Token) []semToken {
	var res []semToken
	line, col := uint32(tok.Line), uint32(tok.Col)
	cur := semToken{line: line, char: col}
	for i := tok.Start; i < tok.End; {
		c := src[i]
		if c == '\n' || c == '\r' || c == '\f' {
			if cur.length > 0 {
				res = append(res, cur)
			}
			i++
			if c == '\r' && i < tok.End && src[i] == '\n' {
				i++
			}
			line++
			cur = semToken{line: line}
			continue
		}
		_, sz := utf8.DecodeRune(src[i:])
		i += sz
		cur.length++
	}
	if cur.length > 0 {
		res = append(res, cur)
	}
	return res
}

// collectSemanticTokens returns the semantic tokens of doc on lines
// [fromLine, toLine].
func collectSemanticTokens(doc *document, fromLine, toLine int) []semToken {
	if doc.tz == nil {
		return nil
	}
	src := doc.tz.Source()
	var res []semToken
	for i := range doc.toks {
		tok := &doc.toks[i]
		if tok.Line > toLine {
			break
		}
		st, ok := semanticType(encode.AttrOf(tok.Type))
		if !ok {
			continue
		}
		var mods uint32
		if tok.Type.IsBad() {
			mods = badModifier
		}
		for _, sp := range lineSpans(src, tok) {
			if int(sp.line) < fromLine || int(sp.line) > toLine {
				continue
			}
			sp.typ = semanticTypeIndex[st]
			sp.mods = mods
			res = append(res, sp)
		}
	}
	return res
}

// encodeSemanticTokens delta encodes toks, which must be in document
// order.
func encodeSemanticTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, st := range toks {
		deltaLine := st.line - prevLine
		deltaChar := st.char
		if deltaLine == 0 {
			deltaChar = st.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, st.length, st.typ, st.mods)
		prevLine = st.line
		prevChar = st.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	toks := collectSemanticTokens(doc, 0, int(^uint32(0)>>1))
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	toks := collectSemanticTokens(doc, int(r.Start.Line), int(r.End.Line))
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks),
	}, nil
}
