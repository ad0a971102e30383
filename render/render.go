package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/ltsv"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	LTSV     Format = "ltsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
	ENV      Format = "env"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{LTSV, JSON, JSONL, YAML, CSV, TSV, Table, Markdown, ENV, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each record with a Go text/template.
// The template data is a map from label to value.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// Option configures rendering.
type Option func(*options)

type options struct {
	columns  []string
	noHeader bool
	border   BorderStyle
	title    string
	indent   string
	maxWidth int
	export   bool
	quote    bool
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithColumns fixes the columns of tabular formats (CSV, TSV, Table,
// Markdown, HTML). Without it the columns are the labels of all records in
// first-seen order; streamed CSV and TSV use the labels of the first record.
func WithColumns(labels ...string) Option {
	return func(o *options) { o.columns = labels }
}

// WithHeader controls the header row of CSV, TSV and Table. Default: true.
func WithHeader(on bool) Option {
	return func(o *options) { o.noHeader = !on }
}

// WithBorder sets the table border style. Default: BorderRounded.
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

// WithTitle renders a title above Table output and as the HTML caption.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithIndent sets the JSON and YAML indentation. Without it JSON is compact.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithMaxWidth truncates table cells wider than n columns with "...".
func WithMaxWidth(n int) Option {
	return func(o *options) { o.maxWidth = n }
}

// WithExport prefixes ENV lines with "export ".
func WithExport() Option {
	return func(o *options) { o.export = true }
}

// WithQuote wraps ENV values in double quotes.
func WithQuote() Option {
	return func(o *options) { o.quote = true }
}

// Write renders recs in format f to w.
func Write(w io.Writer, f Format, recs []ltsv.Record, opts ...Option) error {
	o := newOptions(opts)
	switch f {
	case LTSV:
		return ltsv.WriteLines(w, recs)
	case JSON:
		return writeJSON(w, recs, o)
	case JSONL:
		return writeJSONL(w, recs)
	case YAML:
		return writeYAML(w, recs, o)
	case CSV:
		return writeCSV(w, recs, o)
	case TSV:
		return writeTSV(w, recs, o)
	case Table:
		return writeTable(w, recs, o)
	case Markdown:
		return writeMarkdown(w, recs, o)
	case ENV:
		return writeENV(w, recs, o)
	case HTML:
		return writeHTML(w, recs, o)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, recs)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders recs in format f and returns the bytes.
func Marshal(f Format, recs []ltsv.Record, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, recs, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columns returns the configured columns or the union of labels in
// first-seen order.
func columns(recs []ltsv.Record, o *options) []string {
	if len(o.columns) > 0 {
		return o.columns
	}
	seen := make(map[string]struct{})
	var cols []string
	for _, rec := range recs {
		for label := range rec.All() {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			cols = append(cols, label)
		}
	}
	return cols
}

// row projects rec onto cols. Missing labels render as "".
func row(rec ltsv.Record, cols []string) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i], _ = rec.Get(col)
	}
	return out
}

func rows(recs []ltsv.Record, cols []string) [][]string {
	out := make([][]string, len(recs))
	for i, rec := range recs {
		out[i] = row(rec, cols)
	}
	return out
}
