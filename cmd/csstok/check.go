package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	n := 0
	for _, path := range srcArgs(args) {
		sf, err := getSrcFile(cc, path)
		if err != nil {
			n++
			if !cfg.Quiet {
				fmt.Fprintln(cc.Out, err)
			}
			continue
		}
		for i := range sf.Toks {
			tok := &sf.Toks[i]
			if !tok.Type.IsBad() {
				continue
			}
			n++
			if !cfg.Quiet {
				fmt.Fprintln(cc.Out, sf.Tok.BadErr(tok))
			}
		}
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
