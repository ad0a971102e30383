package main

import (
	"bytes"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/bjaus/ltsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seqOf(recs []ltsv.Record, err error) iter.Seq2[ltsv.Record, error] {
	return func(yield func(ltsv.Record, error) bool) {
		for _, rec := range recs {
			if !yield(rec, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}

func TestCatRecords(t *testing.T) {
	t.Parallel()
	in := "host:127.0.0.1\tstatus:200\r\n\nhost:::1\tstatus:404\n"
	var buf bytes.Buffer
	seq := records(ltsv.NewParser(), strings.NewReader(in), nil, zap.NewNop())
	require.NoError(t, catRecords(&buf, newPalette(false), seq))
	assert.Equal(t, "host:127.0.0.1\tstatus:200\n\nhost:::1\tstatus:404\n", buf.String())
}

func TestCatRecordsError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	var buf bytes.Buffer
	err := catRecords(&buf, newPalette(false), seqOf([]ltsv.Record{mustParse(t, "a:1")}, boom))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "a:1\n", buf.String(), "records before the error are flushed")
}

func TestPaletteLine(t *testing.T) {
	t.Parallel()
	rec := mustParse(t, "a:1\tb:x:y")
	assert.Equal(t, ltsv.FormatLine(rec), newPalette(false).line(rec))
	assert.Empty(t, newPalette(false).line(nil))

	colored := newPalette(true).line(rec)
	assert.NotEqual(t, ltsv.FormatLine(rec), colored)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "x:y")
	assert.Equal(t, 1, strings.Count(colored, "\t"))
}

func TestColorOut(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.False(t, (&MainConfig{}).colorOut(&buf))
	assert.True(t, (&MainConfig{Color: true}).colorOut(&buf))
	assert.False(t, (*MainConfig)(nil).colorOut(&buf))
}

func TestLoggerDefault(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, (*MainConfig)(nil).logger())
	assert.NotNil(t, (&MainConfig{}).logger())
	assert.NotNil(t, newLogger(true))
}
