package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ltsv"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %v", cli.ErrUsage, args)
	}
	p := cfg.parser()
	a, err := readText(p, cc.In, args[0], cfg.logger())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := readText(p, cc.In, args[1], cfg.logger())
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changed, err := writeDiff(cc.Out, newPalette(cfg.colorOut(cc.Out)), lineDiff(a, b), cfg.Equal)
	if err != nil {
		return err
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// readText decodes path and re-encodes each record on its own line. Filtered
// labels and line terminators are not part of the result.
func readText(p ltsv.Parser, in io.Reader, path string, log *zap.Logger) (string, error) {
	var sb strings.Builder
	for rec, err := range records(p, in, []string{path}, log) {
		if err != nil {
			return "", err
		}
		sb.WriteString(ltsv.FormatLine(rec))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// lineDiff returns the line-level difference between a and b.
func lineDiff(a, b string) []diffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var out []diffLine
	for _, d := range diffs {
		for line := range strings.Lines(d.Text) {
			out = append(out, diffLine{op: d.Type, text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

// writeDiff writes removed lines with "-" and added lines with "+"; unchanged
// lines are written with " " when equal is set. It reports whether any line
// changed.
func writeDiff(w io.Writer, pal *palette, lines []diffLine, equal bool) (bool, error) {
	bw := bufio.NewWriter(w)
	changed := false
	for _, l := range lines {
		switch l.op {
		case diffmatchpatch.DiffDelete:
			changed = true
			bw.WriteString(pal.del("-" + l.text))
		case diffmatchpatch.DiffInsert:
			changed = true
			bw.WriteString(pal.ins("+" + l.text))
		default:
			if !equal {
				continue
			}
			bw.WriteString(" " + l.text)
		}
		bw.WriteByte('\n')
	}
	return changed, bw.Flush()
}
