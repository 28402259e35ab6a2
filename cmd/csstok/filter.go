package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/eval"
	"github.com/signadot/csstok/wire"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	f, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	enc := wire.NewEncoder(cc.Out, cfg.Format)
	for _, path := range srcArgs(args[1:]) {
		sf, err := getSrcFile(cc, path)
		if err != nil {
			return err
		}
		src := sf.Tok.Source()
		toks, err := f.Select(sf.Toks, src)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", sf.Path, err)
		}
		for i := range toks {
			tok := &toks[i]
			if cfg.Raw {
				fmt.Fprintf(cc.Out, "%s\n", src[tok.Start:tok.End])
				continue
			}
			if err := enc.Encode(tok); err != nil {
				return err
			}
		}
	}
	return nil
}
