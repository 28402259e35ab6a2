package token

import "iter"

// Tokenize appends the tokens of src to dst, excluding the final TEOF.
// The only error is invalid UTF-8.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	t, err := NewFromBytes(src, opts...)
	if err != nil {
		return nil, err
	}
	for {
		tok := t.Next()
		if tok.Type == TEOF {
			return dst, nil
		}
		dst = append(dst, tok)
	}
}

// All returns a sequence of the remaining tokens, excluding TEOF.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := t.Next()
			if tok.Type == TEOF || !yield(tok) {
				return
			}
		}
	}
}

// BadErr returns an error describing tok if it is a TBadString or
// TBadURL, and nil otherwise.
func (t *Tokenizer) BadErr(tok *Token) error {
	switch tok.Type {
	case TBadString:
		return NewTokenizeErr(ErrBadString, t.posDoc.Pos(tok.Start))
	case TBadURL:
		return NewTokenizeErr(ErrBadURL, t.posDoc.Pos(tok.Start))
	}
	return nil
}
