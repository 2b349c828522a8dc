package jsonlutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestStart_OneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[row](&buf, 0, nil)
	in <- row{"a", 1}
	in <- row{"b", 2}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"name\":\"a\",\"n\":1}\n{\"name\":\"b\",\"n\":2}\n", buf.String())
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStart_DrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[row](failWriter{boom}, 1, nil)
	for i := 0; i < 10; i++ {
		in <- row{"x", i} // must not block after the failure
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}

func TestStart_BrokenPipeIsSuccess(t *testing.T) {
	boom := errors.New("broken pipe")
	in, done := Start[row](failWriter{boom}, 1, func(err error) bool { return errors.Is(err, boom) })
	in <- row{"x", 1}
	close(in)
	assert.NoError(t, <-done)
}
