package main

import (
	"fmt"
	"io"
	"iter"

	"github.com/bjaus/ltsv"
	"github.com/bjaus/ltsv/render"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func grep(cfg *GrepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grep.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Where == "" {
		return fmt.Errorf("%w: grep requires -where <expr>", cli.ErrUsage)
	}
	m, err := newMatcher(cfg.Where)
	if err != nil {
		return err
	}
	seq := grepRecords(cfg, m, cc.In, args)
	switch {
	case cfg.Count:
		n := 0
		for _, err := range seq {
			if err != nil {
				return err
			}
			n++
		}
		_, err := fmt.Fprintln(cc.Out, n)
		return err
	case cfg.Format == render.LTSV:
		return catRecords(cc.Out, newPalette(cfg.colorOut(cc.Out)), seq)
	default:
		return render.WriteIter(cc.Out, cfg.Format, seq)
	}
}

// grepRecords decodes args without label filters so the expression sees
// every label, then applies -wants and -ignores to the matching records.
func grepRecords(cfg *GrepConfig, m *matcher, in io.Reader, args []string) iter.Seq2[ltsv.Record, error] {
	log := cfg.logger()
	seq := records(newParser("", "", cfg.Strict), in, args, log)
	return project(filterRecords(seq, m, cfg.Invert, log), cfg.parser())
}

// project copies each record of seq with only the labels p keeps.
func project(seq iter.Seq2[ltsv.Record, error], p ltsv.Parser) iter.Seq2[ltsv.Record, error] {
	return func(yield func(ltsv.Record, error) bool) {
		for rec, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			out := ltsv.NewMap()
			for label, value := range rec.All() {
				if p.Keeps(label) {
					out.Set(label, value)
				}
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// matcher evaluates a compiled boolean expression against one record at a
// time. It is not safe for concurrent use.
type matcher struct {
	prog *vm.Program
	rec  ltsv.Record
}

func newMatcher(src string) (*matcher, error) {
	m := &matcher{}
	prog, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
		expr.Function("field", func(params ...any) (any, error) {
			v, _ := m.rec.Get(params[0].(string))
			return v, nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			_, ok := m.rec.Get(params[0].(string))
			return ok, nil
		},
			new(func(string) bool)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expression: %w", cli.ErrUsage, err)
	}
	m.prog = prog
	return m, nil
}

func (m *matcher) match(rec ltsv.Record) (bool, error) {
	m.rec = rec
	env := make(map[string]any, rec.Len())
	for label, value := range rec.All() {
		env[label] = value
	}
	out, err := expr.Run(m.prog, env)
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}

// filterRecords yields the records of seq that match m, or that do not match
// when invert is set. Records the expression fails on are skipped.
func filterRecords(seq iter.Seq2[ltsv.Record, error], m *matcher, invert bool, log *zap.Logger) iter.Seq2[ltsv.Record, error] {
	return func(yield func(ltsv.Record, error) bool) {
		for rec, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			ok, err := m.match(rec)
			if err != nil {
				log.Debug("skipping record", zap.Stringer("record", stringer{rec}), zap.Error(err))
				continue
			}
			if ok == invert {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

type stringer struct{ rec ltsv.Record }

func (s stringer) String() string { return ltsv.FormatLine(s.rec) }
