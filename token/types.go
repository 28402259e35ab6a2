package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TIdent
	TFunction
	TAtKeyword
	THash
	TString
	TBadString
	TURL
	TBadURL
	TDelim
	TNumber
	TPercentage
	TDimension
	TWhitespace
	TComment
	TColon
	TSemicolon
	TComma
	TLSquare
	TRSquare
	TLParen
	TRParen
	TLCurl
	TRCurl
	TCDO
	TCDC
	TIncludeMatch
	TDashMatch
	TPrefixMatch
	TSuffixMatch
	TSubstringMatch
)

var typeNames = map[TokenType]string{
	TEOF:            "TEOF",
	TIdent:          "TIdent",
	TFunction:       "TFunction",
	TAtKeyword:      "TAtKeyword",
	THash:           "THash",
	TString:         "TString",
	TBadString:      "TBadString",
	TURL:            "TURL",
	TBadURL:         "TBadURL",
	TDelim:          "TDelim",
	TNumber:         "TNumber",
	TPercentage:     "TPercentage",
	TDimension:      "TDimension",
	TWhitespace:     "TWhitespace",
	TComment:        "TComment",
	TColon:          "TColon",
	TSemicolon:      "TSemicolon",
	TComma:          "TComma",
	TLSquare:        "TLSquare",
	TRSquare:        "TRSquare",
	TLParen:         "TLParen",
	TRParen:         "TRParen",
	TLCurl:          "TLCurl",
	TRCurl:          "TRCurl",
	TCDO:            "TCDO",
	TCDC:            "TCDC",
	TIncludeMatch:   "TIncludeMatch",
	TDashMatch:      "TDashMatch",
	TPrefixMatch:    "TPrefixMatch",
	TSuffixMatch:    "TSuffixMatch",
	TSubstringMatch: "TSubstringMatch",
}

// stable names, part of the wire encoding; never rename.
var wireNames = map[TokenType]string{
	TEOF:            "eof",
	TIdent:          "ident",
	TFunction:       "function",
	TAtKeyword:      "at-keyword",
	THash:           "hash",
	TString:         "string",
	TBadString:      "bad-string",
	TURL:            "url",
	TBadURL:         "bad-url",
	TDelim:          "delim",
	TNumber:         "number",
	TPercentage:     "percentage",
	TDimension:      "dimension",
	TWhitespace:     "whitespace",
	TComment:        "comment",
	TColon:          "colon",
	TSemicolon:      "semicolon",
	TComma:          "comma",
	TLSquare:        "l-square",
	TRSquare:        "r-square",
	TLParen:         "l-paren",
	TRParen:         "r-paren",
	TLCurl:          "l-curl",
	TRCurl:          "r-curl",
	TCDO:            "cdo",
	TCDC:            "cdc",
	TIncludeMatch:   "include-match",
	TDashMatch:      "dash-match",
	TPrefixMatch:    "prefix-match",
	TSuffixMatch:    "suffix-match",
	TSubstringMatch: "substring-match",
}

var wireTypes = func() map[string]TokenType {
	res := make(map[string]TokenType, len(wireNames))
	for tt, n := range wireNames {
		res[n] = tt
	}
	return res
}()

func (t TokenType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Name returns the stable lower case name of t.
func (t TokenType) Name() string {
	return wireNames[t]
}

// Types returns all token types in declaration order.
func Types() []TokenType {
	res := make([]TokenType, 0, len(typeNames))
	for t := TEOF; t <= TSubstringMatch; t++ {
		res = append(res, t)
	}
	return res
}

func ParseTokenType(v string) (TokenType, error) {
	t, ok := wireTypes[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTokenType, v)
	}
	return t, nil
}

func (t TokenType) MarshalText() ([]byte, error) {
	n, ok := wireNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTokenType, int(t))
	}
	return []byte(n), nil
}

func (t *TokenType) UnmarshalText(d []byte) error {
	pt, err := ParseTokenType(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// IsTrivia reports whether t is whitespace or a comment.
func (t TokenType) IsTrivia() bool {
	return t == TWhitespace || t == TComment
}

// IsBad reports whether t is a malformed token type.
func (t TokenType) IsBad() bool {
	return t == TBadString || t == TBadURL
}

// IsNumeric reports whether tokens of type t carry a number.
func (t TokenType) IsNumeric() bool {
	return t == TNumber || t == TPercentage || t == TDimension
}

// Token is a single lexical unit. Tokens are values and hold no
// reference to the Tokenizer which produced them.
type Token struct {
	Type TokenType

	// Value is the decoded text payload: identifier, function or
	// keyword name without decoration, string and url contents,
	// comment contents, raw whitespace.
	Value string

	// Number, IsInt apply to TNumber, TPercentage and TDimension.
	Number float64
	IsInt  bool
	// Unit applies to TDimension.
	Unit string
	// HashID is set for THash tokens whose name would start an
	// identifier.
	HashID bool
	// Delim applies to TDelim.
	Delim rune

	// Start and End delimit the source bytes the token consumed.
	Start, End int
	Line, Col  int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %d:%d [%d,%d)", t.Type, t.Line, t.Col, t.Start, t.End)
}

// Len returns the number of source bytes covered by t.
func (t *Token) Len() int {
	return t.End - t.Start
}

// String renders t in CSS source form, re-escaping nothing. It is
// meant for display; use package wire for a stable encoding.
func (t *Token) String() string {
	switch t.Type {
	case TEOF:
		return ""
	case TIdent, TWhitespace:
		return t.Value
	case TFunction:
		return t.Value + "("
	case TAtKeyword:
		return "@" + t.Value
	case THash:
		return "#" + t.Value
	case TString, TBadString:
		return strconv.Quote(t.Value)
	case TURL, TBadURL:
		return "url(" + t.Value + ")"
	case TDelim:
		return string(t.Delim)
	case TNumber:
		return FormatNumber(t.Number, t.IsInt)
	case TPercentage:
		return FormatNumber(t.Number, t.IsInt) + "%"
	case TDimension:
		return FormatNumber(t.Number, t.IsInt) + t.Unit
	case TComment:
		return "/*" + t.Value + "*/"
	}
	return punct[t.Type]
}

var punct = map[TokenType]string{
	TColon:          ":",
	TSemicolon:      ";",
	TComma:          ",",
	TLSquare:        "[",
	TRSquare:        "]",
	TLParen:         "(",
	TRParen:         ")",
	TLCurl:          "{",
	TRCurl:          "}",
	TCDO:            "<!--",
	TCDC:            "-->",
	TIncludeMatch:   "~=",
	TDashMatch:      "|=",
	TPrefixMatch:    "^=",
	TSuffixMatch:    "$=",
	TSubstringMatch: "*=",
}
