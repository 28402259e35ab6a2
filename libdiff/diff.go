package libdiff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/csstok/debug"
	"github.com/signadot/csstok/token"
	"github.com/signadot/csstok/wire"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (o Op) String() string {
	switch o {
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	default:
		return " "
	}
}

// Edit is one step of a diff. OpEqual edits set both From and To,
// OpDelete only From and OpInsert only To.
type Edit struct {
	Op       Op
	From, To *token.Token
}

func (e *Edit) String() string {
	tok := e.From
	if tok == nil {
		tok = e.To
	}
	return e.Op.String() + " " + wire.Text(tok)
}

type diffOpts struct {
	ignoreTrivia bool
}

type DiffOption func(*diffOpts)

// IgnoreTrivia drops whitespace and comments before comparing.
func IgnoreTrivia(v bool) DiffOption {
	return func(o *diffOpts) { o.ignoreTrivia = v }
}

func Diff(from, to []token.Token, opts ...DiffOption) []Edit {
	opt := &diffOpts{}
	for _, o := range opts {
		o(opt)
	}
	if opt.ignoreTrivia {
		from = dropTrivia(from)
		to = dropTrivia(to)
	}
	keyMap := map[string]rune{}
	fromRunes := mapTokensTo(keyMap, from)
	toRunes := mapTokensTo(keyMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("diff %d keys, %d hunks\n", len(keyMap), len(diffs))
	}
	res := make([]Edit, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Edit{Op: OpDelete, From: &from[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, Edit{Op: OpEqual, From: &from[fi], To: &to[ti]})
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Edit{Op: OpInsert, To: &to[ti]})
				ti++
			}
		}
	}
	return res
}

// Changed reports whether edits contains anything but OpEqual.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != OpEqual {
			return true
		}
	}
	return false
}

// Format writes the edits to w one per line. Unless all is set, runs
// of equal tokens are left out.
func Format(w io.Writer, edits []Edit, all bool) error {
	for i := range edits {
		e := &edits[i]
		if e.Op == OpEqual && !all {
			continue
		}
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

func dropTrivia(toks []token.Token) []token.Token {
	res := make([]token.Token, 0, len(toks))
	for i := range toks {
		if toks[i].Type.IsTrivia() {
			continue
		}
		res = append(res, toks[i])
	}
	return res
}

// mapTokensTo assigns each distinct token key a rune so the token
// sequences can be diffed as text.
func mapTokensTo(m map[string]rune, toks []token.Token) []rune {
	res := make([]rune, len(toks))
	for i := range toks {
		k := key(&toks[i])
		r, ok := m[k]
		if !ok {
			r = keyRune(len(m))
			m[k] = r
		}
		res[i] = r
	}
	return res
}

// keyRune returns the i'th valid non surrogate code point above the
// ascii range.
func keyRune(i int) rune {
	r := rune(0x100 + i)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func key(tok *token.Token) string {
	var b strings.Builder
	b.WriteString(tok.Type.Name())
	b.WriteByte(0)
	b.WriteString(tok.Value)
	if tok.Type.IsNumeric() {
		b.WriteByte(0)
		b.WriteString(strconv.FormatFloat(tok.Number, 'g', -1, 64))
		b.WriteByte(0)
		b.WriteString(strconv.FormatBool(tok.IsInt))
		b.WriteByte(0)
		b.WriteString(tok.Unit)
	}
	if tok.HashID {
		b.WriteString("\x00id")
	}
	return b.String()
}
