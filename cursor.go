package ltsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
)

type cursorState int

const (
	stateReady cursorState = iota
	stateYielding
	stateExhausted
	stateClosed
)

// Cursor is a lazy, forward-only sequence of records read from a line-buffered
// source. No line is read until [Cursor.HasNext] or [Cursor.Next] asks for one,
// and at most one line is held in lookahead.
//
// A Cursor is not safe for concurrent use.
//
//	c, err := p.OpenCursor("access.log")
//	if err != nil { ... }
//	defer c.Close()
//	for c.HasNext() {
//	    rec, err := c.Next()
//	    ...
//	}
//	if err := c.Err(); err != nil { ... }
type Cursor struct {
	parser  Parser
	rd      *bufio.Reader
	closer  io.Closer
	state   cursorState
	pending string
	line    int
	err     error
}

// Cursor returns a Cursor over r. If r implements [io.Closer] the cursor owns
// it and closes it on exhaustion, read failure or [Cursor.Close].
func (p Parser) Cursor(r io.Reader) (*Cursor, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrUsage)
	}
	c := &Cursor{parser: p, rd: bufio.NewReader(r)}
	if cl, ok := r.(io.Closer); ok {
		c.closer = cl
	}
	return c, nil
}

// OpenCursor opens path with [Open] and returns a Cursor that owns the file.
func (p Parser) OpenCursor(path string) (*Cursor, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return p.Cursor(rc)
}

// HasNext reports whether another line is available, reading it ahead if
// needed. Repeated calls without Next do not advance.
func (c *Cursor) HasNext() bool {
	switch c.state {
	case stateYielding:
		return true
	case stateExhausted, stateClosed:
		return false
	}
	line, err := c.rd.ReadString(LF)
	if err != nil && !errors.Is(err, io.EOF) {
		c.err = ioFailure("read", err)
		c.finish()
		return false
	}
	if line == "" {
		c.finish()
		return false
	}
	c.line++
	c.pending = line
	c.state = stateYielding
	return true
}

// Next decodes and consumes the lookahead line. It returns [ErrClosed] after
// Close, the read failure if one ended the source, and [ErrExhausted] once no
// lines remain. A decode failure consumes the line; the cursor stays usable.
func (c *Cursor) Next() (Record, error) {
	if c.state == stateClosed {
		return nil, ErrClosed
	}
	if !c.HasNext() {
		if c.err != nil {
			return nil, c.err
		}
		return nil, ErrExhausted
	}
	line := c.pending
	c.pending = ""
	c.state = stateReady
	rec, err := c.parser.ParseLine(line)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Line = c.line
		}
		return nil, err
	}
	return rec, nil
}

// Err returns the read failure that ended iteration, if any.
func (c *Cursor) Err() error { return c.err }

// Line returns the number of lines read so far.
func (c *Cursor) Line() int { return c.line }

// Close releases the source. It is safe to call more than once and after the
// cursor is exhausted.
func (c *Cursor) Close() error {
	if c.state == stateClosed {
		return nil
	}
	c.state = stateClosed
	c.pending = ""
	return c.release()
}

// finish moves to the exhausted state and releases the source.
func (c *Cursor) finish() {
	c.state = stateExhausted
	if err := c.release(); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Cursor) release() error {
	if c.closer == nil {
		return nil
	}
	cl := c.closer
	c.closer = nil
	if err := cl.Close(); err != nil {
		return ioFailure("close", err)
	}
	return nil
}

// All returns an iterator over the remaining records. Iteration stops after
// the first error, which is yielded with a nil record. The cursor is closed
// when iteration ends, including when the loop body breaks.
//
//	for rec, err := range c.All() {
//	    if err != nil { ... }
//	}
func (c *Cursor) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		defer c.Close()
		for c.HasNext() {
			rec, err := c.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if c.err != nil {
			yield(nil, c.err)
		}
	}
}
