package wire

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/signadot/csstok/token"
)

// Version is the current record version.
const Version = 1

var (
	ErrVersion     = errors.New("unsupported wire version")
	ErrKind        = errors.New("bad kind")
	ErrUnsupported = errors.New("unsupported")
)

type Record struct {
	V      int      `json:"v" yaml:"v"`
	Kind   string   `json:"kind" yaml:"kind"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Number *float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Int    bool     `json:"int,omitempty" yaml:"int,omitempty"`
	Unit   string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	ID     bool     `json:"id,omitempty" yaml:"id,omitempty"`
	Start  int      `json:"start" yaml:"start"`
	End    int      `json:"end" yaml:"end"`
	Line   int      `json:"line" yaml:"line"`
	Col    int      `json:"col" yaml:"col"`
}

func FromToken(tok *token.Token) *Record {
	rec := &Record{
		V:     Version,
		Kind:  tok.Type.Name(),
		Value: tok.Value,
		Start: tok.Start,
		End:   tok.End,
		Line:  tok.Line,
		Col:   tok.Col,
	}
	switch tok.Type {
	case token.TNumber, token.TPercentage, token.TDimension:
		n := tok.Number
		rec.Number = &n
		rec.Int = tok.IsInt
		rec.Unit = tok.Unit
	case token.THash:
		rec.ID = tok.HashID
	case token.TDelim:
		rec.Value = string(tok.Delim)
	}
	return rec
}

func (r *Record) Token() (token.Token, error) {
	if r.V != Version {
		return token.Token{}, fmt.Errorf("%w: %d", ErrVersion, r.V)
	}
	tt, err := token.ParseTokenType(r.Kind)
	if err != nil {
		return token.Token{}, fmt.Errorf("%w: %w", ErrKind, err)
	}
	tok := token.Token{
		Type:  tt,
		Value: r.Value,
		Start: r.Start,
		End:   r.End,
		Line:  r.Line,
		Col:   r.Col,
	}
	switch tt {
	case token.TNumber, token.TPercentage, token.TDimension:
		if r.Number == nil {
			return token.Token{}, fmt.Errorf("%w: %s without number", ErrKind, r.Kind)
		}
		tok.Number = *r.Number
		tok.IsInt = r.Int
		tok.Unit = r.Unit
	case token.THash:
		tok.HashID = r.ID
	case token.TDelim:
		d, sz := utf8.DecodeRuneInString(r.Value)
		if sz == 0 || sz != len(r.Value) {
			return token.Token{}, fmt.Errorf("%w: delim %q", ErrKind, r.Value)
		}
		tok.Delim = d
	}
	return tok, nil
}
