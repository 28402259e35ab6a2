package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/csstok/token"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("trivia", func(params ...any) (any, error) {
			tt, err := token.ParseTokenType(params[0].(string))
			if err != nil {
				return nil, err
			}
			return tt.IsTrivia(), nil
		},
			new(func(string) bool)),
		expr.Function("bad", func(params ...any) (any, error) {
			tt, err := token.ParseTokenType(params[0].(string))
			if err != nil {
				return nil, err
			}
			return tt.IsBad(), nil
		},
			new(func(string) bool)),
	}
}
