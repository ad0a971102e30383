package ltsv

import (
	"bufio"
	"io"
	"strings"
)

// FormatLine renders rec as label:value fields joined by tabs, in the record's
// iteration order, without a line terminator. A nil record renders as "".
func FormatLine(rec Record) string {
	if rec == nil {
		return ""
	}
	var sb strings.Builder
	appendLine(&sb, rec)
	return sb.String()
}

func appendLine(sb *strings.Builder, rec Record) {
	first := true
	for label, value := range rec.All() {
		if !first {
			sb.WriteByte(Tab)
		}
		first = false
		sb.WriteString(label)
		sb.WriteByte(Separator)
		sb.WriteString(value)
	}
}

// Encoder writes records as LF-terminated LTSV lines. Output is buffered;
// call [Encoder.Flush] when done.
type Encoder struct {
	bw  *bufio.Writer
	buf strings.Builder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{bw: bufio.NewWriter(w)}
}

// Encode writes one record.
func (e *Encoder) Encode(rec Record) error {
	e.buf.Reset()
	if rec != nil {
		appendLine(&e.buf, rec)
	}
	e.buf.WriteByte(LF)
	if _, err := e.bw.WriteString(e.buf.String()); err != nil {
		return ioFailure("write", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	if err := e.bw.Flush(); err != nil {
		return ioFailure("flush", err)
	}
	return nil
}

// WriteLines writes one line per record to w.
func WriteLines(w io.Writer, recs []Record) error {
	enc := NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// WriteFile writes recs to the file at path, creating or truncating it. See
// [Create] for the supported paths.
func WriteFile(path string, recs []Record) (err error) {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = ioFailure("close", cerr)
		}
	}()
	return WriteLines(wc, recs)
}
