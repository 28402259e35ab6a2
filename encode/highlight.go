package encode

import (
	"bufio"
	"io"

	"github.com/signadot/csstok/token"
)

type highlightOpts struct {
	colors *Colors
}

type HighlightOption func(*highlightOpts)

func HighlightColors(c *Colors) HighlightOption {
	return func(o *highlightOpts) { o.colors = c }
}

// Highlight writes the source spans of toks to w, each colored by its
// kind. Without colors the output is the source itself.
func Highlight(w io.Writer, src []byte, toks []token.Token, opts ...HighlightOption) error {
	opt := &highlightOpts{}
	for _, o := range opts {
		o(opt)
	}
	bw := bufio.NewWriter(w)
	for i := range toks {
		tok := &toks[i]
		raw := src[tok.Start:tok.End]
		if opt.colors == nil || tok.Type == token.TWhitespace {
			bw.Write(raw)
			continue
		}
		bw.WriteString(opt.colors.Color(AttrOf(tok.Type), string(raw)))
	}
	return bw.Flush()
}
