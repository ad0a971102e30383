package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/ltsv"
	"github.com/bjaus/ltsv/render"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug output to stderr'"`
	Color   bool `cli:"name=color desc='color output even when stdout is not a terminal'"`

	Main *cli.Command
	log  *zap.Logger
}

// logger returns the configured logger, or a no-op logger before the root
// command has parsed its options.
func (cfg *MainConfig) logger() *zap.Logger {
	if cfg == nil || cfg.log == nil {
		return zap.NewNop()
	}
	return cfg.log
}

// colorOut reports whether output written to w should be colored.
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg != nil && cfg.Color {
		return true
	}
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type CatConfig struct {
	*MainConfig
	Wants   string `cli:"name=wants aliases=w desc='comma separated labels to keep'"`
	Ignores string `cli:"name=ignores aliases=i desc='comma separated labels to drop'"`
	Strict  bool   `cli:"name=strict desc='reject invalid labels and values'"`

	Cat *cli.Command
}

func (cfg *CatConfig) parser() ltsv.Parser {
	return newParser(cfg.Wants, cfg.Ignores, cfg.Strict)
}

type ConvertConfig struct {
	*MainConfig
	Wants    string `cli:"name=wants aliases=w desc='comma separated labels to keep'"`
	Ignores  string `cli:"name=ignores aliases=i desc='comma separated labels to drop'"`
	Strict   bool   `cli:"name=strict desc='reject invalid labels and values'"`
	Columns  string `cli:"name=columns aliases=c desc='comma separated columns of tabular formats'"`
	NoHeader bool   `cli:"name=no-header desc='omit the header row of csv, tsv and table output'"`
	Indent   int    `cli:"name=indent desc='indent json and yaml output by n spaces'"`
	Title    string `cli:"name=title desc='table title or html caption'"`
	Export   bool   `cli:"name=export desc='prefix env lines with export'"`
	Quote    bool   `cli:"name=quote desc='double quote env values'"`

	Format render.Format
	Border render.BorderStyle

	Convert *cli.Command
}

func (cfg *ConvertConfig) parser() ltsv.Parser {
	return newParser(cfg.Wants, cfg.Ignores, cfg.Strict)
}

func (cfg *ConvertConfig) renderOpts() []render.Option {
	opts := []render.Option{
		render.WithHeader(!cfg.NoHeader),
		render.WithBorder(cfg.Border),
	}
	if cols := splitLabels(cfg.Columns); len(cols) > 0 {
		opts = append(opts, render.WithColumns(cols...))
	}
	if cfg.Indent > 0 {
		opts = append(opts, render.WithIndent(strings.Repeat(" ", cfg.Indent)))
	}
	if cfg.Title != "" {
		opts = append(opts, render.WithTitle(cfg.Title))
	}
	if cfg.Export {
		opts = append(opts, render.WithExport())
	}
	if cfg.Quote {
		opts = append(opts, render.WithQuote())
	}
	return opts
}

type GrepConfig struct {
	*MainConfig
	Wants   string `cli:"name=wants aliases=w desc='comma separated labels to keep'"`
	Ignores string `cli:"name=ignores aliases=i desc='comma separated labels to drop'"`
	Strict  bool   `cli:"name=strict desc='reject invalid labels and values'"`
	Where   string `cli:"name=where aliases=e desc='boolean expression over labels, e.g. status >= \"500\"'"`
	Invert  bool   `cli:"name=invert aliases=x desc='print records that do not match'"`
	Count   bool   `cli:"name=count desc='print only the number of matching records'"`

	Format render.Format

	Grep *cli.Command
}

func (cfg *GrepConfig) parser() ltsv.Parser {
	return newParser(cfg.Wants, cfg.Ignores, cfg.Strict)
}

type ValidateConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='print nothing, only set the exit status'"`

	Validate *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Wants   string `cli:"name=wants aliases=w desc='comma separated labels to compare'"`
	Ignores string `cli:"name=ignores aliases=i desc='comma separated labels to leave out of the comparison'"`
	Equal   bool   `cli:"name=equal aliases=u desc='also print unchanged records'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) parser() ltsv.Parser {
	return newParser(cfg.Wants, cfg.Ignores, false)
}

func formatFunc(fp *render.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := render.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func borderFunc(bp *render.BorderStyle) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		switch v {
		case "rounded":
			*bp = render.BorderRounded
		case "none":
			*bp = render.BorderNone
		case "ascii":
			*bp = render.BorderASCII
		default:
			return nil, fmt.Errorf("%w: unknown border %q (rounded, none, ascii)", cli.ErrUsage, v)
		}
		return *bp, nil
	})
}

func newParser(wants, ignores string, strict bool) ltsv.Parser {
	p := ltsv.NewParser()
	if strict {
		p = p.Strict()
	}
	if labels := splitLabels(wants); len(labels) > 0 {
		p = p.Wants(labels...)
	}
	if labels := splitLabels(ignores); len(labels) > 0 {
		p = p.Ignores(labels...)
	}
	return p
}

// splitLabels splits a comma separated flag value, dropping empty entries.
func splitLabels(s string) []string {
	var out []string
	for label := range strings.SplitSeq(s, ",") {
		if label = strings.TrimSpace(label); label != "" {
			out = append(out, label)
		}
	}
	return out
}
