package token

import (
	"math"
	"strconv"
	"strings"
)

// startsNumber reports whether the code points n ahead would start a
// number.
func (t *Tokenizer) startsNumber(n int) bool {
	switch c := t.peek(n); {
	case c == '+' || c == '-':
		c1 := t.peek(n + 1)
		return isDigit(c1) || (c1 == '.' && isDigit(t.peek(n+2)))
	case c == '.':
		return isDigit(t.peek(n + 1))
	default:
		return isDigit(c)
	}
}

func (t *Tokenizer) numeric(start cursor) Token {
	d := t.src[t.cur.off:]
	n, isInt := number(d)
	v, _ := strconv.ParseFloat(string(d[:n]), 64)
	// out of range values clamp
	if math.IsInf(v, 0) {
		v = math.Copysign(math.MaxFloat64, v)
	}
	// numbers are ascii without line terminators
	t.cur.off += n
	t.cur.col += n
	switch {
	case t.startsIdent(0):
		return t.token(start, Token{Type: TDimension, Number: v, IsInt: isInt, Unit: t.name()})
	case t.peek(0) == '%':
		t.advance()
		return t.token(start, Token{Type: TPercentage, Number: v, IsInt: isInt})
	}
	return t.token(start, Token{Type: TNumber, Number: v, IsInt: isInt})
}

// number returns the length of the number at the start of d and
// whether it is written as an integer, i.e. with neither a fraction
// nor an exponent.
func number(d []byte) (int, bool) {
	i := 0
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		i++
	}
	i += asciiDigits(d[i:])
	f := fract(d[i:])
	e := exp(d[i+f:])
	return i + f + e, f+e == 0
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract returns the length of a '.' followed by one or more digits.
func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// FormatNumber formats v in CSS syntax. Non integer values always
// carry a fraction or exponent so that they read back as such.
func FormatNumber(v float64, isInt bool) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	verb := byte('f')
	if math.Abs(v) >= 1e21 || (v != 0 && math.Abs(v) < 1e-6) {
		verb = 'e'
	}
	s := strconv.FormatFloat(v, verb, -1, 64)
	if !isInt && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
