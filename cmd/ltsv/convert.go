package main

import (
	"github.com/bjaus/ltsv/render"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	log := cfg.logger()
	log.Debug("convert", zap.Stringer("format", cfg.Format), zap.Strings("files", args))
	seq := records(cfg.parser(), cc.In, args, log)
	return render.WriteIter(cc.Out, cfg.Format, seq, cfg.renderOpts()...)
}
