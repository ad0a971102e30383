package render

import (
	"fmt"
	"html"
	"io"

	"github.com/bjaus/ltsv"
)

func writeHTML(w io.Writer, recs []ltsv.Record, o *options) error {
	if len(recs) == 0 {
		return nil
	}
	cols := columns(recs, o)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if o.title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(o.title)); err != nil {
			return err
		}
	}
	if !o.noHeader {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if err := writeHTMLRow(w, "th", cols); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := writeHTMLRow(w, "td", row(rec, cols)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s>%s</%s>\n", tag, html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}
