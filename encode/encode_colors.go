package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/csstok/token"
)

type ColorAttr int

const (
	PlainColor ColorAttr = iota
	CommentColor
	KeywordColor
	IdentColor
	FunctionColor
	HashColor
	StringColor
	NumberColor
	SepColor
	DelimColor
	BadColor
)

// AttrOf returns the color attribute tokens of type tt are drawn with.
func AttrOf(tt token.TokenType) ColorAttr {
	switch tt {
	case token.TComment:
		return CommentColor
	case token.TAtKeyword, token.TCDO, token.TCDC:
		return KeywordColor
	case token.TIdent:
		return IdentColor
	case token.TFunction:
		return FunctionColor
	case token.THash:
		return HashColor
	case token.TString, token.TURL:
		return StringColor
	case token.TNumber, token.TPercentage, token.TDimension:
		return NumberColor
	case token.TColon, token.TSemicolon, token.TComma,
		token.TLSquare, token.TRSquare, token.TLParen, token.TRParen,
		token.TLCurl, token.TRCurl,
		token.TIncludeMatch, token.TDashMatch, token.TPrefixMatch,
		token.TSuffixMatch, token.TSubstringMatch:
		return SepColor
	case token.TDelim:
		return DelimColor
	case token.TBadString, token.TBadURL:
		return BadColor
	}
	return PlainColor
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor:  color.BlueString,
			KeywordColor:  color.RGB(168, 0, 196).SprintfFunc(),
			IdentColor:    color.RGB(128, 168, 196).SprintfFunc(),
			FunctionColor: color.RGB(196, 168, 128).SprintfFunc(),
			HashColor:     color.RGB(196, 96, 16).SprintfFunc(),
			StringColor:   color.RGB(8, 196, 16).SprintfFunc(),
			NumberColor:   color.RGB(128, 216, 236).SprintfFunc(),
			SepColor:      color.RGB(255, 0, 196).SprintfFunc(),
			DelimColor:    color.CyanString,
			BadColor:      color.New(color.FgRed, color.Underline).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
