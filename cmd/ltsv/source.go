package main

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/bjaus/ltsv"
	"go.uber.org/zap"
)

// openCursor returns a cursor over path, reading in when path is "-".
func openCursor(p ltsv.Parser, in io.Reader, path string) (*ltsv.Cursor, error) {
	if path != ltsv.Stdio {
		return p.OpenCursor(path)
	}
	if in == nil {
		in = os.Stdin
	}
	return p.Cursor(io.NopCloser(in))
}

// records decodes the files in paths one after the other, or in when paths
// is empty. Errors are prefixed with the file they occurred in and end the
// sequence.
func records(p ltsv.Parser, in io.Reader, paths []string, log *zap.Logger) iter.Seq2[ltsv.Record, error] {
	if len(paths) == 0 {
		paths = []string{ltsv.Stdio}
	}
	return func(yield func(ltsv.Record, error) bool) {
		for _, path := range paths {
			c, err := openCursor(p, in, path)
			if err != nil {
				yield(nil, err)
				return
			}
			log.Debug("reading", zap.String("file", path))
			for rec, err := range c.All() {
				if err != nil {
					yield(nil, fmt.Errorf("%s: %w", path, err))
					return
				}
				if !yield(rec, nil) {
					return
				}
			}
			log.Debug("read", zap.String("file", path), zap.Int("lines", c.Line()))
		}
	}
}
