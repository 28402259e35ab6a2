package main

import (
	"context"
	"errors"

	"go.lsp.dev/protocol"

	"github.com/signadot/csstok/token"
)

const diagSource = "csstok"

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.log.Error(err, "publish diagnostics", "uri", doc.uri)
	}
}

// validateDocument reports invalid utf8 or each malformed string and
// url token.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   diagSource,
		}
		tzErr := &token.TokenizeErr{}
		if errors.As(doc.err, &tzErr) {
			line, col := tzErr.Pos.LineCol()
			d.Message = tzErr.Err.Error()
			d.Range = protocol.Range{
				Start: position(line, col),
				End:   position(line, col+1),
			}
		}
		return append(diagnostics, d)
	}
	pd := doc.tz.PosDoc()
	for i := range doc.toks {
		tok := &doc.toks[i]
		if !tok.Type.IsBad() {
			continue
		}
		msg := token.ErrBadString.Error()
		if tok.Type == token.TBadURL {
			msg = token.ErrBadURL.Error()
		}
		endLine, endCol := pd.LineCol(tok.End)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: position(tok.Line, tok.Col),
				End:   position(endLine, endCol),
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  msg,
			Source:   diagSource,
		})
	}
	return diagnostics
}

func position(line, col int) protocol.Position {
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}
