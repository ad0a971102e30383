package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ltsv"
)

var markdownEscaper = strings.NewReplacer("|", `\|`)

func writeMarkdown(w io.Writer, recs []ltsv.Record, o *options) error {
	if len(recs) == 0 {
		return nil
	}
	cols := columns(recs, o)
	header := escapeMarkdown(cols)
	body := rows(recs, cols)
	for i := range body {
		body[i] = escapeMarkdown(body[i])
	}

	// Minimum width 3 keeps the separator row valid.
	widths := computeWidths(len(cols), header, body)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, r := range body {
		if err := writeMarkdownRow(w, r, widths); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padCell(cells[i], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
