package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/debug"
	"github.com/signadot/csstok/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	from, err := getSrcFile(cc, args[0])
	if err != nil {
		return err
	}
	to, err := getSrcFile(cc, args[1])
	if err != nil {
		return err
	}
	edits := libdiff.Diff(from.Toks, to.Toks, libdiff.IgnoreTrivia(cfg.Trivia))
	if debug.Diff() {
		debug.Logf("diff %s %s: %d edits\n", from.Path, to.Path, len(edits))
	}
	if !libdiff.Changed(edits) {
		return nil
	}
	if err := libdiff.Format(cc.Out, edits, cfg.All); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
