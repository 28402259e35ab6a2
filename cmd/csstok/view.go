package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewFiles(cfg, cc, cc.Out, srcArgs(args))
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	opts := cfg.highlightOpts(w)
	for i, file := range files {
		sf, err := getSrcFile(cc, file)
		if err != nil {
			return err
		}
		if err := encode.Highlight(w, sf.Tok.Source(), sf.Toks, opts...); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			w.Write([]byte("\n"))
		}
	}
	return nil
}
