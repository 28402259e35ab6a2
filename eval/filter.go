package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/csstok/debug"
	"github.com/signadot/csstok/token"
)

// Env is the environment a filter expression is evaluated in.
type Env struct {
	Kind   string  `expr:"kind"`
	Value  string  `expr:"value"`
	Number float64 `expr:"number"`
	Int    bool    `expr:"integer"`
	Unit   string  `expr:"unit"`
	ID     bool    `expr:"id"`
	Line   int     `expr:"line"`
	Col    int     `expr:"col"`
	Raw    string  `expr:"raw"`
	Index  int     `expr:"index"`
}

func NewEnv(tok *token.Token, src []byte, index int) *Env {
	env := &Env{
		Kind:   tok.Type.Name(),
		Value:  tok.Value,
		Number: tok.Number,
		Int:    tok.IsInt,
		Unit:   tok.Unit,
		ID:     tok.HashID,
		Line:   tok.Line,
		Col:    tok.Col,
		Index:  index,
	}
	if src != nil {
		env.Raw = string(src[tok.Start:tok.End])
	}
	return env
}

type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsBool()}, exprOpts()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(env *Env) (bool, error) {
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, err
	}
	if debug.Filter() {
		debug.Logf("filter %q on %s %q: %v\n", f.src, env.Kind, env.Raw, res)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T", res)
	}
	return b, nil
}

// Select returns the tokens of toks the filter matches. src is the
// source toks were read from; it may be nil, in which case raw is
// empty.
func (f *Filter) Select(toks []token.Token, src []byte) ([]token.Token, error) {
	var res []token.Token
	for i := range toks {
		ok, err := f.Match(NewEnv(&toks[i], src, i))
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, toks[i])
		}
	}
	return res, nil
}
