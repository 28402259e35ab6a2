package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/csstok/token"
	"github.com/signadot/csstok/wire"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tz == nil {
		return nil, nil
	}
	pos := params.Position
	tok := tokenAt(doc, int(pos.Line), int(pos.Character))
	if tok == nil {
		return nil, nil
	}
	endLine, endCol := doc.tz.PosDoc().LineCol(tok.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(tok),
		},
		Range: &protocol.Range{
			Start: position(tok.Line, tok.Col),
			End:   position(endLine, endCol),
		},
	}, nil
}

// tokenAt returns the token covering line and col, or nil.
func tokenAt(doc *document, line, col int) *token.Token {
	off := doc.tz.PosDoc().Offset(line, col)
	i := sort.Search(len(doc.toks), func(i int) bool {
		return doc.toks[i].End > off
	})
	if i == len(doc.toks) {
		return nil
	}
	return &doc.toks[i]
}

func hoverText(tok *token.Token) string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "**%s**\n\n", tok.Type.Name())
	fmt.Fprintf(buf, "`%s`\n", wire.Text(tok))
	if tok.Type.IsBad() {
		buf.WriteString("\nmalformed: the token is kept and tokenizing resumes after it\n")
	}
	return buf.String()
}
