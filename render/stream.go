package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bjaus/ltsv"
)

// WriteIter renders records from seq to w as they arrive. LTSV, JSONL, CSV,
// TSV, ENV and GoTemplate write each record immediately; JSON is streamed as
// array elements. Table, Markdown, HTML and YAML need every record for layout,
// so records are collected first. The first error yielded by seq stops
// rendering and is returned.
func WriteIter(w io.Writer, f Format, seq iter.Seq2[ltsv.Record, error], opts ...Option) error {
	o := newOptions(opts)
	switch f {
	case LTSV:
		return streamLTSV(w, seq)
	case JSON:
		return streamJSON(w, seq, o)
	case JSONL:
		return streamEach(seq, func(rec ltsv.Record) error {
			return newJSONEncoder(w, "").Encode(object{rec})
		})
	case CSV:
		return streamRows(seq, o, func(cells []string) error { return writeCSVRow(w, cells) })
	case TSV:
		return streamRows(seq, o, func(cells []string) error { return writeTSVRow(w, cells) })
	case ENV:
		return streamENV(w, seq, o)
	case YAML, Table, Markdown, HTML:
		return streamCollect(w, f, seq, opts)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmpl, seq)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func streamEach(seq iter.Seq2[ltsv.Record, error], fn func(ltsv.Record) error) error {
	for rec, err := range seq {
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func streamCollect(w io.Writer, f Format, seq iter.Seq2[ltsv.Record, error], opts []Option) error {
	var recs []ltsv.Record
	if err := streamEach(seq, func(rec ltsv.Record) error {
		recs = append(recs, rec)
		return nil
	}); err != nil {
		return err
	}
	return Write(w, f, recs, opts...)
}

func streamLTSV(w io.Writer, seq iter.Seq2[ltsv.Record, error]) error {
	enc := ltsv.NewEncoder(w)
	if err := streamEach(seq, enc.Encode); err != nil {
		return err
	}
	return enc.Flush()
}

func streamJSON(w io.Writer, seq iter.Seq2[ltsv.Record, error], o *options) error {
	open, sep, closing := "[", ",", "]\n"
	if o.indent != "" {
		open, sep, closing = "[\n"+o.indent, ",\n"+o.indent, "\n]\n"
	}
	n := 0
	if err := streamEach(seq, func(rec ltsv.Record) error {
		b, err := marshalElement(rec, o.indent)
		if err != nil {
			return err
		}
		lead := sep
		if n == 0 {
			lead = open
		}
		n++
		if _, err := io.WriteString(w, lead); err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}); err != nil {
		return err
	}
	if n == 0 {
		closing = "[]\n"
	}
	_, err := io.WriteString(w, closing)
	return err
}

// streamRows writes a header from the first record's labels (or the
// configured columns) and one row per record.
func streamRows(seq iter.Seq2[ltsv.Record, error], o *options, writeRow func([]string) error) error {
	cols := o.columns
	first := true
	return streamEach(seq, func(rec ltsv.Record) error {
		if first {
			first = false
			if len(cols) == 0 {
				cols = columns([]ltsv.Record{rec}, o)
			}
			if !o.noHeader {
				if err := writeRow(cols); err != nil {
					return err
				}
			}
		}
		return writeRow(row(rec, cols))
	})
}

func streamENV(w io.Writer, seq iter.Seq2[ltsv.Record, error], o *options) error {
	first := true
	return streamEach(seq, func(rec ltsv.Record) error {
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		return writeENVRecord(w, rec, o)
	})
}

func streamGoTemplate(w io.Writer, tmplStr string, seq iter.Seq2[ltsv.Record, error]) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	return streamEach(seq, func(rec ltsv.Record) error {
		return executeTemplate(w, tmpl, rec)
	})
}
