package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bjaus/ltsv/render"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "ltsv").
		WithSynopsis("ltsv [opts] command [opts] [files]").
		WithDescription("ltsv reads, filters, validates and converts Labeled Tab-Separated Values. " +
			"Files ending in .lz4 are decompressed; with no files or \"-\" stdin is read.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ltsvMain(cfg, cc, args)
		}).
		WithSubs(
			CatCommand(cfg),
			ConvertCommand(cfg),
			GrepCommand(cfg),
			ValidateCommand(cfg),
			DiffCommand(cfg))
}

func ltsvMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.log = newLogger(cfg.Verbose)
	defer cfg.log.Sync()
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		cfg.log.Sync()
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func CatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("cat").
		WithAliases("c").
		WithSynopsis("cat [-wants a,b] [-ignores c] [-strict] [files]").
		WithDescription("decode records and print them as LTSV, labels in color on a terminal").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cat(cfg, cc, args)
		})
	cfg.Cat = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, Format: render.JSONL, Border: render.BorderRounded}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: fmt.Sprintf("output format: %v or go-template=<tmpl> (default jsonl)", render.Formats()),
			Type:        cli.NamedFuncOpt(formatFunc(&cfg.Format), "(format)"),
		},
		&cli.Opt{
			Name:        "border",
			Description: "table border: rounded, none, ascii",
			Type:        cli.NamedFuncOpt(borderFunc(&cfg.Border), "(style)"),
		})
	cmd := cli.NewCommand("convert").
		WithAliases("conv", "to").
		WithSynopsis("convert [-f format] [-columns a,b] [files]").
		WithDescription("convert records to another output format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func GrepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GrepConfig{MainConfig: mainCfg, Format: render.LTSV}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "output format of matching records (default ltsv)",
			Type:        cli.NamedFuncOpt(formatFunc(&cfg.Format), "(format)"),
		})
	cmd := cli.NewCommand("grep").
		WithAliases("g", "where").
		WithSynopsis("grep -where <expr> [-f format] [files]").
		WithDescription(grepDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return grep(cfg, cc, args)
		})
	cfg.Grep = cmd
	return cmd
}

const grepDescription = `print records matching a boolean expression.

Labels are variables holding string values; labels that are not valid
identifiers are read with field("label"), and has("label") reports whether a
label is present. Missing labels are nil. Examples:

	ltsv grep -where 'status == "500"' access.log
	ltsv grep -where 'int(field("req-time")) > 100 && method != "GET"' access.log.lz4`

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("validate").
		WithAliases("check").
		WithSynopsis("validate [-q] [files]").
		WithDescription("check every line in strict mode and report file:line: reason for each bad line; " +
			"exits 1 if any line is invalid").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-wants a,b] [-ignores c] a b").
		WithDescription("compare the records of two files line by line; exits 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
