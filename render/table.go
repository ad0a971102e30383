package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ltsv"
	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

func writeTable(w io.Writer, recs []ltsv.Record, o *options) error {
	if len(recs) == 0 {
		return nil
	}
	cols := columns(recs, o)
	var header []string
	if !o.noHeader {
		header = cols
	}
	body := rows(recs, cols)
	widths := computeWidths(len(cols), header, body)
	if o.maxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], o.maxWidth)
		}
	}
	if o.border == BorderNone {
		return renderPlainTable(w, header, body, widths)
	}
	bc, ok := borderSets[o.border]
	if !ok {
		bc = borderSets[BorderRounded]
	}
	return renderBorderedTable(w, o.title, header, body, widths, bc)
}

func computeWidths(numCols int, header []string, body [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		widths[i] = max(widths[i], runewidth.StringWidth(h))
	}
	for _, r := range body {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func renderPlainTable(w io.Writer, header []string, body [][]string, widths []int) error {
	if len(header) > 0 {
		if err := writePlainRow(w, header, widths); err != nil {
			return err
		}
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, r := range body {
		if err := writePlainRow(w, r, widths); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatTableCell(cells[i], width)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func renderBorderedTable(w io.Writer, title string, header []string, body [][]string, widths []int, bc borderChars) error {
	if title != "" {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, centerCell(title, inner), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(header) > 0 {
		if err := drawBorderedRow(w, header, widths, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, r := range body {
		if err := drawBorderedRow(w, r, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the width between the outer vertical borders: each
// cell plus one space of padding per side, and one border between cells.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatTableCell(cells[i], width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return padCell(s, width)
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func centerCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
