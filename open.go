package ltsv

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Stdio is the path that [Open] and [Create] map to stdin and stdout.
const Stdio = "-"

// Open opens an LTSV source. [Stdio] reads stdin, and closing it is a no-op.
// Paths ending in ".lz4" are decompressed as they are read.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioFailure("failed to open file", err)
	}
	if isLZ4(path) {
		return &lz4ReadCloser{zr: lz4.NewReader(f), f: f}, nil
	}
	return f, nil
}

// Create creates or truncates an LTSV sink. [Stdio] writes to stdout. Paths
// ending in ".lz4" are compressed; Close finishes the lz4 frame before closing
// the file.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, ioFailure("failed to create file", err)
	}
	if isLZ4(path) {
		return &lz4WriteCloser{zw: lz4.NewWriter(f), f: f}, nil
	}
	return f, nil
}

func isLZ4(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".lz4")
}

type lz4ReadCloser struct {
	zr *lz4.Reader
	f  *os.File
}

func (r *lz4ReadCloser) Read(p []byte) (int, error) { return r.zr.Read(p) }

func (r *lz4ReadCloser) Close() error { return r.f.Close() }

type lz4WriteCloser struct {
	zw *lz4.Writer
	f  *os.File
}

func (w *lz4WriteCloser) Write(p []byte) (int, error) { return w.zw.Write(p) }

func (w *lz4WriteCloser) Close() error {
	return errors.Join(w.zw.Close(), w.f.Close())
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
