package main

import (
	"fmt"
	"strings"

	"github.com/bjaus/ltsv"
	"github.com/fatih/color"
)

type palette struct {
	label, sep, bad, del, ins func(a ...any) string
}

func newPalette(enabled bool) *palette {
	if !enabled {
		return &palette{label: fmt.Sprint, sep: fmt.Sprint, bad: fmt.Sprint, del: fmt.Sprint, ins: fmt.Sprint}
	}
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return &palette{
		label: mk(color.FgCyan),
		sep:   mk(color.FgHiBlack),
		bad:   mk(color.FgRed, color.Bold),
		del:   mk(color.FgRed),
		ins:   mk(color.FgGreen),
	}
}

// line formats rec like [ltsv.FormatLine] with labels and separators colored.
func (p *palette) line(rec ltsv.Record) string {
	if rec == nil {
		return ""
	}
	var sb strings.Builder
	i := 0
	for label, value := range rec.All() {
		if i > 0 {
			sb.WriteByte(ltsv.Tab)
		}
		sb.WriteString(p.label(label))
		sb.WriteString(p.sep(string(ltsv.Separator)))
		sb.WriteString(value)
		i++
	}
	return sb.String()
}
