package render

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/bjaus/ltsv"
)

// object marshals a record as a JSON object in label order.
type object struct{ rec ltsv.Record }

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	first := true
	for label, value := range o.rec.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := enc.Encode(label); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(value); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimNewline drops the newline json.Encoder appends after each value.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

func newJSONEncoder(w io.Writer, indent string) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc
}

// marshalElement encodes rec as it appears inside an array encoded with
// newJSONEncoder(w, indent): nested lines carry one level of indent and the
// first line carries none.
func marshalElement(rec ltsv.Record, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent(indent, indent)
	}
	if err := enc.Encode(object{rec}); err != nil {
		return nil, err
	}
	trimNewline(&buf)
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, recs []ltsv.Record, o *options) error {
	objs := make([]object, len(recs))
	for i, rec := range recs {
		objs[i] = object{rec}
	}
	return newJSONEncoder(w, o.indent).Encode(objs)
}

func writeJSONL(w io.Writer, recs []ltsv.Record) error {
	enc := newJSONEncoder(w, "")
	for _, rec := range recs {
		if err := enc.Encode(object{rec}); err != nil {
			return err
		}
	}
	return nil
}
