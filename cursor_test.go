package ltsv_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bjaus/ltsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errReadFailed = errors.New("read failed")

// trackingReader records how many bytes were consumed and whether it was closed.
type trackingReader struct {
	r      io.Reader
	read   int
	closed int
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	t.read += n
	return n, err
}

func (t *trackingReader) Close() error {
	t.closed++
	return nil
}

// oneByteReader returns at most one byte per Read, so lookahead is observable.
type oneByteReader struct{ r io.Reader }

func (o *oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

// failingReader yields its data, then fails.
type failingReader struct {
	data   string
	closed bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.data == "" {
		return 0, errReadFailed
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func (f *failingReader) Close() error {
	f.closed = true
	return nil
}

type failingCloser struct{ io.Reader }

func (failingCloser) Close() error { return errReadFailed }

func newCursor(t *testing.T, r io.Reader) *ltsv.Cursor {
	t.Helper()
	c, err := ltsv.NewParser().Cursor(r)
	require.NoError(t, err)
	return c
}

func TestCursorDrain(t *testing.T) {
	t.Parallel()
	c := newCursor(t, strings.NewReader("a:1\na:2\r\na:3"))
	var got []string
	for c.HasNext() {
		rec, err := c.Next()
		require.NoError(t, err)
		v, _ := rec.Get("a")
		got = append(got, v)
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
	assert.Equal(t, 3, c.Line())
	assert.NoError(t, c.Err())
}

func TestCursorHasNextIdempotent(t *testing.T) {
	t.Parallel()
	src := &trackingReader{r: &oneByteReader{r: strings.NewReader("a:1\nb:2\nc:3\n")}}
	c := newCursor(t, src)

	require.True(t, c.HasNext())
	read := src.read
	require.True(t, c.HasNext())
	assert.Equal(t, read, src.read, "second HasNext must not read")
	assert.Equal(t, 1, c.Line())

	rec, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "a:1", ltsv.FormatLine(rec))

	require.True(t, c.HasNext())
	require.True(t, c.HasNext())
	assert.Equal(t, 2, c.Line())
	rec, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "b:2", ltsv.FormatLine(rec))
}

func TestCursorNextWithoutHasNext(t *testing.T) {
	t.Parallel()
	c := newCursor(t, strings.NewReader("a:1\nb:2\n"))
	rec, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "a:1", ltsv.FormatLine(rec))
	rec, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "b:2", ltsv.FormatLine(rec))
	_, err = c.Next()
	assert.ErrorIs(t, err, ltsv.ErrExhausted)
	assert.ErrorIs(t, err, ltsv.ErrUsage)
}

func TestCursorEmptyLines(t *testing.T) {
	t.Parallel()
	c := newCursor(t, strings.NewReader("\n\r\na:1\n"))
	var lens []int
	for c.HasNext() {
		rec, err := c.Next()
		require.NoError(t, err)
		lens = append(lens, rec.Len())
	}
	assert.Equal(t, []int{0, 0, 1}, lens)
}

func TestCursorEmptySource(t *testing.T) {
	t.Parallel()
	src := &trackingReader{r: strings.NewReader("")}
	c := newCursor(t, src)
	assert.False(t, c.HasNext())
	assert.Equal(t, 1, src.closed)
	_, err := c.Next()
	assert.ErrorIs(t, err, ltsv.ErrExhausted)
}

func TestCursorReleasesOnExhaustion(t *testing.T) {
	t.Parallel()
	src := &trackingReader{r: strings.NewReader("a:1\n")}
	c := newCursor(t, src)
	require.True(t, c.HasNext())
	assert.Zero(t, src.closed)
	_, err := c.Next()
	require.NoError(t, err)
	assert.False(t, c.HasNext())
	assert.Equal(t, 1, src.closed)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, src.closed, "source released exactly once")
}

func TestCursorClose(t *testing.T) {
	t.Parallel()
	src := &trackingReader{r: strings.NewReader("a:1\nb:2\n")}
	c := newCursor(t, src)
	require.True(t, c.HasNext())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, src.closed)

	assert.False(t, c.HasNext())
	_, err := c.Next()
	assert.ErrorIs(t, err, ltsv.ErrClosed)
	assert.ErrorIs(t, err, ltsv.ErrUsage)

	require.NoError(t, c.Close())
	assert.Equal(t, 1, src.closed)
}

func TestCursorCloseAfterExhaustionReportsClosed(t *testing.T) {
	t.Parallel()
	c := newCursor(t, strings.NewReader("a:1"))
	for c.HasNext() {
		_, err := c.Next()
		require.NoError(t, err)
	}
	require.NoError(t, c.Close())
	_, err := c.Next()
	assert.ErrorIs(t, err, ltsv.ErrClosed)
}

func TestCursorBorrowedReaderNotClosed(t *testing.T) {
	t.Parallel()
	r := strings.NewReader("a:1\n")
	c := newCursor(t, r)
	for c.HasNext() {
		_, err := c.Next()
		require.NoError(t, err)
	}
	assert.NoError(t, c.Close())
}

func TestCursorDecodeErrorKeepsGoing(t *testing.T) {
	t.Parallel()
	c := newCursor(t, strings.NewReader("a:1\nbroken\nb:2\n"))
	_, err := c.Next()
	require.NoError(t, err)

	_, err = c.Next()
	var de *ltsv.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Line)
	assert.Equal(t, "broken", de.Token)

	rec, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "b:2", ltsv.FormatLine(rec))
}

func TestCursorReadFailure(t *testing.T) {
	t.Parallel()
	src := &failingReader{data: "a:1\n"}
	c := newCursor(t, src)

	rec, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "a:1", ltsv.FormatLine(rec))

	assert.False(t, c.HasNext())
	assert.True(t, src.closed)
	require.ErrorIs(t, c.Err(), ltsv.ErrIO)
	assert.ErrorIs(t, c.Err(), errReadFailed)
	assert.NotErrorIs(t, c.Err(), ltsv.ErrDecode)

	_, err = c.Next()
	assert.ErrorIs(t, err, ltsv.ErrIO)
}

func TestCursorCloseFailure(t *testing.T) {
	t.Parallel()
	c := newCursor(t, failingCloser{strings.NewReader("a:1\n")})
	require.True(t, c.HasNext())
	err := c.Close()
	assert.ErrorIs(t, err, ltsv.ErrIO)
	assert.ErrorIs(t, err, errReadFailed)
}

func TestCursorNilReader(t *testing.T) {
	t.Parallel()
	_, err := ltsv.NewParser().Cursor(nil)
	assert.ErrorIs(t, err, ltsv.ErrUsage)
}

func TestCursorAll(t *testing.T) {
	t.Parallel()
	src := &trackingReader{r: strings.NewReader("a:1\ta:2\nb:3\n")}
	c := newCursor(t, src)
	var got []string
	for rec, err := range c.All() {
		require.NoError(t, err)
		got = append(got, ltsv.FormatLine(rec))
	}
	assert.Equal(t, []string{"a:2", "b:3"}, got)
	assert.Equal(t, 1, src.closed)
}

func TestCursorAllBreakCloses(t *testing.T) {
	t.Parallel()
	src := &trackingReader{r: strings.NewReader("a:1\nb:2\nc:3\n")}
	c := newCursor(t, src)
	for range c.All() {
		break
	}
	assert.Equal(t, 1, src.closed)
	_, err := c.Next()
	assert.ErrorIs(t, err, ltsv.ErrClosed)
}

func TestCursorAllStopsAtFirstError(t *testing.T) {
	t.Parallel()
	c := newCursor(t, strings.NewReader("a:1\nbroken\nc:3\n"))
	var (
		recs int
		errs []error
	)
	for rec, err := range c.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		assert.NotNil(t, rec)
		recs++
	}
	assert.Equal(t, 1, recs)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ltsv.ErrDecode)
}

func TestCursorAllReadFailure(t *testing.T) {
	t.Parallel()
	c := newCursor(t, &failingReader{data: "a:1\n"})
	var errs []error
	for _, err := range c.All() {
		if err != nil {
			errs = append(errs, err)
		}
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ltsv.ErrIO)
}

func TestCursorLongLine(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 1<<20)
	c := newCursor(t, strings.NewReader("a:"+long+"\nb:1\n"))
	rec, err := c.Next()
	require.NoError(t, err)
	v, _ := rec.Get("a")
	assert.Len(t, v, len(long))
	assert.True(t, c.HasNext())
}
