package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ltsv"
)

func writeTSV(w io.Writer, recs []ltsv.Record, o *options) error {
	if len(recs) == 0 && len(o.columns) == 0 {
		return nil
	}
	cols := columns(recs, o)
	if !o.noHeader {
		if err := writeTSVRow(w, cols); err != nil {
			return err
		}
	}
	for _, rec := range recs {
		if err := writeTSVRow(w, row(rec, cols)); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}
