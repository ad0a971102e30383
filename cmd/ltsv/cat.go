package main

import (
	"bufio"
	"io"
	"iter"

	"github.com/bjaus/ltsv"
	"github.com/scott-cotton/cli"
)

func cat(cfg *CatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cat.Parse(cc, args)
	if err != nil {
		return err
	}
	pal := newPalette(cfg.colorOut(cc.Out))
	return catRecords(cc.Out, pal, records(cfg.parser(), cc.In, args, cfg.logger()))
}

func catRecords(w io.Writer, pal *palette, seq iter.Seq2[ltsv.Record, error]) error {
	bw := bufio.NewWriter(w)
	for rec, err := range seq {
		if err != nil {
			bw.Flush()
			return err
		}
		bw.WriteString(pal.line(rec))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
