package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/csstok/encode"
	"github.com/signadot/csstok/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	Format format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...*format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = f
		}
		return f, nil
	})
}

// highlightOpts returns the options to highlight to w: colors when
// -color is given, or when it is not and w is a terminal.
func (cfg *MainConfig) highlightOpts(w io.Writer) []encode.HighlightOption {
	if cfg.Color {
		// color disables itself when stdout is not a terminal.
		color.NoColor = false
		return []encode.HighlightOption{encode.HighlightColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.HighlightOption{encode.HighlightColors(encode.NewColors())}
	}
	return nil
}

type TokensConfig struct {
	*MainConfig
	NoTrivia bool `cli:"name=notrivia desc='omit whitespace and comments'"`

	Tokens *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Trivia bool `cli:"name=t desc='ignore whitespace and comments'"`
	All    bool `cli:"name=a desc='show equal tokens too'"`

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print source text of matches, one per line'"`

	Filter *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}
