package render

import (
	"fmt"
	"io"

	"github.com/bjaus/ltsv"
)

func writeENV(w io.Writer, recs []ltsv.Record, o *options) error {
	for i, rec := range recs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeENVRecord(w, rec, o); err != nil {
			return err
		}
	}
	return nil
}

func writeENVRecord(w io.Writer, rec ltsv.Record, o *options) error {
	prefix := ""
	if o.export {
		prefix = "export "
	}
	for label, value := range rec.All() {
		var err error
		if o.quote {
			_, err = fmt.Fprintf(w, "%s%s=%q\n", prefix, label, value)
		} else {
			_, err = fmt.Fprintf(w, "%s%s=%s\n", prefix, label, value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
