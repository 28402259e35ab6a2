package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/debug"
	"github.com/signadot/csstok/wire"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	enc := wire.NewEncoder(cc.Out, cfg.Format)
	for _, path := range srcArgs(args) {
		sf, err := getSrcFile(cc, path)
		if err != nil {
			return err
		}
		if debug.Tokens() {
			debug.Logf("%s: %d tokens\n", sf.Path, len(sf.Toks))
		}
		for i := range sf.Toks {
			tok := &sf.Toks[i]
			if cfg.NoTrivia && tok.Type.IsTrivia() {
				continue
			}
			if debug.Tokens() {
				debug.LogAny(wire.FromToken(tok))
			}
			if err := enc.Encode(tok); err != nil {
				return fmt.Errorf("error encoding %s: %w", sf.Path, err)
			}
		}
	}
	return nil
}
