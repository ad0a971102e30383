package render

import (
	"encoding/csv"
	"io"

	"github.com/bjaus/ltsv"
)

func writeCSV(w io.Writer, recs []ltsv.Record, o *options) error {
	if len(recs) == 0 && len(o.columns) == 0 {
		return nil
	}
	cols := columns(recs, o)
	cw := csv.NewWriter(w)
	if !o.noHeader {
		if err := cw.Write(cols); err != nil {
			return err
		}
	}
	for _, rec := range recs {
		if err := cw.Write(row(rec, cols)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVRow(w io.Writer, cells []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cells); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
