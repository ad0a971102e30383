// Package render writes LTSV records in other output formats.
//
// Supported formats are LTSV, JSON, JSONL, YAML, CSV, TSV, Table, Markdown,
// ENV, HTML and GoTemplate. The entry points are [Write] and [Marshal] for a
// slice of records and [WriteIter] for a stream such as [ltsv.Cursor.All]:
//
//	c, _ := ltsv.NewParser().OpenCursor("access.log")
//	err := render.WriteIter(os.Stdout, render.JSONL, c.All())
//
// # Columns
//
// Tabular formats (CSV, TSV, Table, Markdown, HTML) use the labels of all
// records, in first-seen order, as columns. Records missing a label render an
// empty cell. Use [WithColumns] to fix the columns; streamed CSV and TSV take
// them from the first record.
//
// # JSON and YAML
//
// Records render as objects or mappings whose keys keep the label order, inside
// an array or sequence. Values are always strings. Use [WithIndent] for
// indented output.
//
// # Table
//
// [Table] draws rounded box borders by default; [WithBorder] selects ASCII
// borders or none, in which case columns are separated by two spaces. A
// [WithTitle] title is centered above the header, and [WithMaxWidth] cuts
// long cells with "...". Widths are measured in terminal columns, so wide
// characters line up.
//
// # ENV
//
// Each field becomes a label=value line, with a blank line between records.
// [WithExport] and [WithQuote] make the output safe to source from a shell.
//
// # GoTemplate
//
// [GoTemplate] executes a Go [text/template] once per record with a map from
// label to value as data. Missing labels render as "":
//
//	render.Write(os.Stdout, render.GoTemplate("{{.host}} {{.status}}"), recs)
//
// # Errors
//
// [ParseFormat] and [Write] return [ErrUnsupportedFormat] for unknown format
// names, and template formats return [ErrInvalidTemplate] when the template
// does not parse. Errors from the destination writer are returned unchanged.
package render
