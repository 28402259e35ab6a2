package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "token output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "csstok").
		WithSynopsis("csstok [opts] command [opts]").
		WithDescription("csstok is a tool for working with CSS tokens.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return csMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			FilterCommand(cfg),
			StatsCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-notrivia] [files]").
		WithDescription("print the tokens of css files in the output format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view css files with tokens in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("report malformed strings and urls, exiting 1 if there are any").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-t] [-a] a b").
		WithDescription("diff the tokens of two css files, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [-raw] <expr> [files]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `print the tokens for which an expression is true.

The expression sees the fields

  kind     stable kind name, eg "ident", "dimension", "bad-url"
  value    decoded text
  number   numeric value
  integer  whether the number was written as an integer
  unit     dimension unit
  id       whether a hash is an id
  line     0 based line
  col      0 based column
  raw      source text
  index    token index in its file

and the functions getenv(name), trivia(kind), bad(kind).

Example:

  csstok filter 'kind == "dimension" && unit == "px" && number > 100' a.css`

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("s").
		WithSynopsis("stats [files]").
		WithDescription("count tokens by kind").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}
