package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8   = errors.New("bad utf8")
	ErrBadString = errors.New("bad string")
	ErrBadURL    = errors.New("bad url")
	ErrTokenType = errors.New("unknown token type")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
