// Package ltsv reads and writes Labeled Tab-Separated Values.
//
// An LTSV line is a list of label:value fields separated by tabs, and records
// are separated by newlines:
//
//	host:127.0.0.1	time:[10/Oct/2000:13:55:36 -0700]	status:200
//
// Only the first colon of a field separates the label from the value, so
// values may contain colons. Lines may end in LF or CRLF.
//
// # Decoding
//
// [ParseLine] decodes one line into a [Record], an ordered label/value
// mapping. A [Parser] carries configuration and is an immutable value; each
// configuration method returns a modified copy:
//
//	p := ltsv.NewParser().
//		Wants("host", "status"). // keep only these labels
//		Ignores("status").       // ignores win over wants
//		Strict()                 // validate labels and values
//	rec, err := p.ParseLine(line)
//
// Strict mode requires labels to match [0-9A-Za-z_.-]+ and rejects values
// containing NUL, TAB, CR or LF.
//
// Use [Parser.MapFactory] to substitute the record container, for example
// [NewSyncMap] for records shared between goroutines.
//
// # Streaming
//
// A [Cursor] decodes a source lazily, one line per advancement:
//
//	c, err := p.OpenCursor("access.log.lz4")
//	if err != nil { ... }
//	for rec, err := range c.All() {
//	    ...
//	}
//
// [Parser.ParseLines] and [Parser.ParseFile] drain a cursor into a slice and
// fail on the first error.
//
// # Encoding
//
// [FormatLine] renders a record as one line. [WriteLines], [WriteFile] and
// [Encoder] write LF-terminated lines.
//
// # Files
//
// [Open] and [Create] map "-" to stdin and stdout and transparently
// (de)compress paths ending in ".lz4".
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrDecode]: malformed field or strict-mode violation, as a [*DecodeError]
//   - [ErrIO]: the source or sink could not be opened, read, written or closed
//   - [ErrUsage]: API misuse; [ErrClosed] and [ErrExhausted] wrap it
package ltsv
