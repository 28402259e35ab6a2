package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/signadot/csstok/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is immutable once stored; edits replace it.
type document struct {
	uri     string
	content string
	version int32
	tz      *token.Tokenizer
	toks    []token.Token
	err     error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	tz, err := token.New(content, token.TokenName(uri))
	if err != nil {
		doc.err = err
		return doc
	}
	doc.tz = tz
	for tok := range tz.All() {
		doc.toks = append(doc.toks, tok)
	}
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := newDocument(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.docs.put(doc)
	s.log.V(1).Info("open", "uri", uri, "tokens", len(doc.toks))
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text.
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := newDocument(uri, content, params.TextDocument.Version)
	s.docs.put(doc)
	s.log.V(1).Info("change", "uri", uri, "version", doc.version, "tokens", len(doc.toks))
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	s.log.V(1).Info("close", "uri", uri)
	return nil
}
