// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"prdesign/internal/app"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

// target builds a pseudo-random but fixed sequence of n bases.
func target(n int) string {
	const bases = "ACGT"
	var b strings.Builder
	x := uint32(12345)
	for i := 0; i < n; i++ {
		x = x*1103515245 + 12345
		b.WriteByte(bases[(x>>16)&3])
	}
	return b.String()
}

func TestEndToEnd(t *testing.T) {
	fa := write(t, "itest.fa", ">amp\n"+target(600)+"\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-D", "2", "-M", "30", "-X", "70", "-m", "50", "-x", "70", fa}, &out, &errBuf)
	require.Contains(t, []int{0, 1}, code, errBuf.String())
	require.Contains(t, out.String(), "Target gene: amp")
}

func TestParallelMatchesSerial(t *testing.T) {
	fa := write(t, "par.fa", ">a\n"+target(400)+"\n>b\n"+target(250)+"\n")

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"-s", "14", "-l", "22", "-m", "30", "-x", "75", "-M", "20", "-X", "80",
			"-D", "1", "-n", "50",
			"-t", fmt.Sprint(threads),
			"-f", "tsv", "-q",
			fa,
		}, &out, &errB)
		require.Contains(t, []int{0, 1}, code, errB.String())
		return out.String()
	}

	serial := run(1)
	require.Equal(t, serial, run(4), "parallel output differs from serial")
	require.Equal(t, serial, run(0))
}
