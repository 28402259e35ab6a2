package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/token"
)

type kindCount struct {
	Type  token.TokenType
	Count int
	Bytes int
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	m := map[token.TokenType]*kindCount{}
	total := 0
	for _, path := range srcArgs(args) {
		sf, err := getSrcFile(cc, path)
		if err != nil {
			return err
		}
		for i := range sf.Toks {
			tok := &sf.Toks[i]
			kc := m[tok.Type]
			if kc == nil {
				kc = &kindCount{Type: tok.Type}
				m[tok.Type] = kc
			}
			kc.Count++
			kc.Bytes += tok.Len()
			total++
		}
	}
	for _, kc := range sortCounts(m) {
		fmt.Fprintf(cc.Out, "%-16s %8d %10d\n", kc.Type.Name(), kc.Count, kc.Bytes)
	}
	fmt.Fprintf(cc.Out, "%-16s %8d\n", "total", total)
	return nil
}

// sortCounts orders by descending count, then by kind.
func sortCounts(m map[token.TokenType]*kindCount) []*kindCount {
	res := make([]*kindCount, 0, len(m))
	for _, kc := range m {
		res = append(res, kc)
	}
	slices.SortFunc(res, func(a, b *kindCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	})
	return res
}
