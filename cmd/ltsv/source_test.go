package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/ltsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect(t *testing.T, p ltsv.Parser, in string, paths ...string) ([]string, error) {
	t.Helper()
	var out []string
	for rec, err := range records(p, strings.NewReader(in), paths, zap.NewNop()) {
		if err != nil {
			return out, err
		}
		out = append(out, ltsv.FormatLine(rec))
	}
	return out, nil
}

func TestRecordsStdin(t *testing.T) {
	t.Parallel()
	got, err := collect(t, ltsv.NewParser(), "a:1\tb:2\nc:3\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1\tb:2", "c:3"}, got)
}

func TestRecordsDashReadsStdin(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "a.ltsv", "file:1\n")
	got, err := collect(t, ltsv.NewParser(), "stdin:1\n", path, ltsv.Stdio)
	require.NoError(t, err)
	assert.Equal(t, []string{"file:1", "stdin:1"}, got)
}

func TestRecordsChainsFiles(t *testing.T) {
	t.Parallel()
	a := writeFile(t, "a.ltsv", "n:1\nn:2\n")
	b := filepath.Join(t.TempDir(), "b.ltsv.lz4")
	require.NoError(t, ltsv.WriteFile(b, []ltsv.Record{mustParse(t, "n:3")}))

	got, err := collect(t, ltsv.NewParser(), "", a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"n:1", "n:2", "n:3"}, got)
}

func TestRecordsErrorNamesFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad.ltsv", "a:1\nnosep\nb:2\n")
	got, err := collect(t, ltsv.NewParser(), "", path)
	require.ErrorIs(t, err, ltsv.ErrDecode)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, []string{"a:1"}, got)
}

func TestRecordsMissingFile(t *testing.T) {
	t.Parallel()
	_, err := collect(t, ltsv.NewParser(), "", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ltsv.ErrIO)
}

func TestRecordsBreak(t *testing.T) {
	t.Parallel()
	a := writeFile(t, "a.ltsv", "n:1\nn:2\n")
	b := writeFile(t, "b.ltsv", "n:3\n")
	n := 0
	for _, err := range records(ltsv.NewParser(), nil, []string{a, b}, zap.NewNop()) {
		require.NoError(t, err)
		n++
		if n == 1 {
			break
		}
	}
	assert.Equal(t, 1, n)
}

func TestNewParser(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		wants, ignores string
		strict         bool
		line           string
		want           string
		wantErr        bool
	}{
		"defaults":      {line: "a:1\tb:2\tc:3", want: "a:1\tb:2\tc:3"},
		"wants":         {wants: "a, c", line: "a:1\tb:2\tc:3", want: "a:1\tc:3"},
		"ignores":       {ignores: "b", line: "a:1\tb:2\tc:3", want: "a:1\tc:3"},
		"both":          {wants: "a,b", ignores: "b", line: "a:1\tb:2\tc:3", want: "a:1"},
		"empty entries": {wants: ",,", line: "a:1", want: "a:1"},
		"lenient":       {line: "a b:1", want: "a b:1"},
		"strict":        {strict: true, line: "a b:1", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := newParser(tt.wants, tt.ignores, tt.strict)
			assert.Equal(t, tt.strict, p.IsStrict())
			rec, err := p.ParseLine(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ltsv.ErrDecode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ltsv.FormatLine(rec))
		})
	}
}

func TestSplitLabels(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitLabels(""))
	assert.Equal(t, []string{"a", "b"}, splitLabels("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitLabels(" a , ,b,"))
}

func mustParse(t *testing.T, line string) ltsv.Record {
	t.Helper()
	rec, err := ltsv.ParseLine(line)
	require.NoError(t, err)
	return rec
}
