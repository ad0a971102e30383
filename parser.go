package ltsv

import (
	"fmt"
	"io"
	"strings"
)

// Parser decodes LTSV lines. The zero value is ready to use: it keeps every
// field, builds [Map] records and does not validate.
//
// Parser is an immutable value. The configuration methods return an updated
// copy, so a Parser can be configured once and shared:
//
//	p := ltsv.NewParser().Wants("host", "status").Strict()
type Parser struct {
	wants   map[string]struct{}
	ignores map[string]struct{}
	factory Factory
	strict  bool
}

var defaultParser Parser

// NewParser returns a Parser with the default configuration.
func NewParser() Parser { return Parser{} }

// Wants keeps only the given labels. Calling it with no labels keeps all.
func (p Parser) Wants(labels ...string) Parser {
	p.wants = labelSet(labels)
	return p
}

// Ignores drops the given labels. Ignores is applied before Wants, so a label
// in both sets is dropped. Calling it with no labels drops none.
func (p Parser) Ignores(labels ...string) Parser {
	p.ignores = labelSet(labels)
	return p
}

// MapFactory sets the constructor for decoded records. A nil factory restores
// the default [Map].
func (p Parser) MapFactory(f Factory) Parser {
	p.factory = f
	return p
}

// Strict enables label and value validation.
func (p Parser) Strict() Parser {
	p.strict = true
	return p
}

// IsStrict reports whether validation is enabled.
func (p Parser) IsStrict() bool { return p.strict }

func labelSet(labels []string) map[string]struct{} {
	if len(labels) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

func (p Parser) newRecord() (Record, error) {
	f := p.factory
	if f == nil {
		f = defaultFactory
	}
	rec := f()
	if rec == nil {
		return nil, fmt.Errorf("%w: record factory returned nil", ErrUsage)
	}
	return rec, nil
}

// Keeps reports whether label survives the Ignores and Wants filters.
func (p Parser) Keeps(label string) bool { return p.keep(label) }

func (p Parser) keep(label string) bool {
	if _, ok := p.ignores[label]; ok {
		return false
	}
	if p.wants != nil {
		_, ok := p.wants[label]
		return ok
	}
	return true
}

// ParseLine decodes a single line. A trailing LF, CRLF or CR is ignored.
func (p Parser) ParseLine(line string) (Record, error) {
	rec, err := p.newRecord()
	if err != nil {
		return nil, err
	}
	for token := range strings.SplitSeq(chomp(line), string(Tab)) {
		if token == "" {
			continue
		}
		label, value, ok := strings.Cut(token, string(Separator))
		if !ok {
			return nil, &DecodeError{
				Token:  token,
				Reason: fmt.Sprintf("label and value (%s) are not separated by %q", token, Separator),
			}
		}
		if p.strict {
			if !validLabel(label) {
				return nil, &DecodeError{
					Token:  token,
					Label:  label,
					Reason: fmt.Sprintf("label (%s) is not valid", label),
				}
			}
			if !validValue(value) {
				return nil, &DecodeError{
					Token:  token,
					Label:  label,
					Value:  value,
					Reason: fmt.Sprintf("value (%s) is not valid", value),
				}
			}
		}
		if !p.keep(label) {
			continue
		}
		rec.Set(label, value)
	}
	return rec, nil
}

// ParseLines decodes every line of r. The first error aborts the read and no
// records are returned. If r is an [io.Closer] it is closed.
func (p Parser) ParseLines(r io.Reader) ([]Record, error) {
	c, err := p.Cursor(r)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	var out []Record
	for c.HasNext() {
		rec, err := c.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := c.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseFile decodes every line of the file at path. See [Open] for the
// supported paths.
func (p Parser) ParseFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return p.ParseLines(rc)
}

// ParseLine decodes a single line with the default Parser.
func ParseLine(line string) (Record, error) { return defaultParser.ParseLine(line) }

// ParseLines decodes every line of r with the default Parser.
func ParseLines(r io.Reader) ([]Record, error) { return defaultParser.ParseLines(r) }

// ParseFile decodes every line of the file at path with the default Parser.
func ParseFile(path string) ([]Record, error) { return defaultParser.ParseFile(path) }

// chomp removes one trailing LF, CRLF or CR.
func chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}

// validLabel matches [0-9A-Za-z_.-]+.
func validLabel(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case '0' <= c && c <= '9', 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z':
		case c == '_', c == '.', c == '-':
		default:
			return false
		}
	}
	return true
}

// validValue accepts bytes 0x01-0x08, 0x0B, 0x0C and 0x0E-0xFF.
func validValue(value string) bool {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case 0x00, '\t', '\n', '\r':
			return false
		}
	}
	return true
}
