package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"
)

// PosDoc maps byte offsets of a document to lines and columns.
// Lines and columns are 0 based; columns count code points.
// "\r\n", "\r", "\n" and "\f" each end a line.
type PosDoc struct {
	name string
	d    []byte
	// offsets of the last byte of each line terminator
	n []int
}

func NewPosDoc(name string, d []byte) *PosDoc {
	p := &PosDoc{name: name, d: d}
	for i := 0; i < len(d); i++ {
		switch d[i] {
		case '\n', '\f':
		case '\r':
			if i+1 < len(d) && d[i+1] == '\n' {
				i++
			}
		default:
			continue
		}
		p.n = append(p.n, i)
	}
	return p
}

func (p *PosDoc) Name() string {
	return p.name
}

// Lines returns the number of lines in the document.
func (p *PosDoc) Lines() int {
	return len(p.n) + 1
}

func (p *PosDoc) LineCol(off int) (int, int) {
	off = max(0, min(off, len(p.d)))
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	start := 0
	if di > 0 {
		start = p.n[di-1] + 1
	}
	return di, utf8.RuneCount(p.d[start:off])
}

// Offset is the inverse of LineCol. Out of range lines and columns
// are clamped to the document.
func (p *PosDoc) Offset(line, col int) int {
	if line < 0 {
		return 0
	}
	if line > len(p.n) {
		return len(p.d)
	}
	i := 0
	if line > 0 {
		i = p.n[line-1] + 1
	}
	for ; col > 0 && i < len(p.d); col-- {
		switch p.d[i] {
		case '\n', '\r', '\f':
			return i
		}
		_, sz := utf8.DecodeRune(p.d[i:])
		i += sz
	}
	return i
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	if p.D.name != "" {
		return fmt.Sprintf("%s:%d:%d `...%s...` (offset %d)", p.D.name, l+1, c+1, sample, p.I)
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, l, c)
}
