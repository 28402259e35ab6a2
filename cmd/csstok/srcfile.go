package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/token"
)

// srcFile is a tokenized input file.
type srcFile struct {
	Path string
	Tok  *token.Tokenizer
	Toks []token.Token
}

func getSrcFile(cc *cli.Context, path string) (*srcFile, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	tz, err := token.NewFromReader(r, token.TokenName(path))
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	sf := &srcFile{Path: path, Tok: tz}
	for tok := range tz.All() {
		sf.Toks = append(sf.Toks, tok)
	}
	return sf, nil
}

// srcArgs returns the input paths, stdin if there are none.
func srcArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
