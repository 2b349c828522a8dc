package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prdesign/internal/design"
	"prdesign/pkg/api"
)

var testMeta = Meta{
	RunID:       "00000000-0000-0000-0000-000000000000",
	Tool:        "prdesign",
	Version:     "test",
	GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

func geneXReport(t *testing.T, count int) api.ReportV1 {
	t.Helper()
	p := design.Params{
		Window: 10, MinLen: 4, MaxLen: 6,
		MinGC: 0, MaxGC: 100, MinTm: -200, MaxTm: 200,
		TmTolerance: 50, Count: count,
	}
	res, err := design.Run(context.Background(), design.NewTarget("geneX", "ATGCATGCATGCATGCATGCATGC"), p)
	require.NoError(t, err)
	return ToAPIReport(res, testMeta)
}

func TestToAPIReport(t *testing.T) {
	r := geneXReport(t, 3)
	assert.Equal(t, "geneX", r.Target)
	assert.Equal(t, 24, r.Length)
	assert.Equal(t, 400, r.AcceptedPairs)
	assert.Equal(t, api.StrandStatsV1{Generated: 20, Kept: 20}, r.Forward)
	require.Len(t, r.Pairs, 3)
	for i, p := range r.Pairs {
		assert.Equal(t, i+1, p.Rank)
		assert.Equal(t, r.Sequence[p.Forward.Start:p.Forward.End], p.Forward.Seq)
		assert.Equal(t, p.Forward.Start, p.ProductStart)
		assert.Equal(t, p.Reverse.End, p.ProductEnd)
		assert.Equal(t, p.ProductEnd-p.ProductStart, p.ProductLength)
	}
}

func TestToAPIReport_OverlappingWindows(t *testing.T) {
	// 12 bp target with a 10 bp window: forward sites can lie downstream
	// of reverse sites.
	p := design.Params{
		Window: 10, MinLen: 4, MaxLen: 5,
		MinGC: 0, MaxGC: 100, MinTm: -200, MaxTm: 200,
		TmTolerance: 500, Count: 1000,
	}
	res, err := design.Run(context.Background(), design.NewTarget("short", "ATGCATGCATGC"), p)
	require.NoError(t, err)
	r := ToAPIReport(res, testMeta)
	require.Len(t, r.Pairs, res.Accepted)

	inverted := 0
	for _, pp := range r.Pairs {
		if pp.NoProduct {
			inverted++
			assert.Zero(t, pp.ProductStart)
			assert.Zero(t, pp.ProductEnd)
			assert.Zero(t, pp.ProductLength)
			continue
		}
		assert.LessOrEqual(t, pp.Forward.Start, pp.Reverse.Start)
		assert.LessOrEqual(t, pp.Forward.End, pp.Reverse.End)
		assert.Equal(t, pp.Forward.Start, pp.ProductStart)
		assert.Equal(t, pp.Reverse.End, pp.ProductEnd)
		assert.Positive(t, pp.ProductLength)
	}
	assert.Positive(t, inverted)
	assert.Less(t, inverted, len(r.Pairs))

	var text, tsv bytes.Buffer
	require.NoError(t, WriteText(&text, r))
	require.NoError(t, WriteTSV(&tsv, r))
	assert.Contains(t, text.String(), "none")
	assert.NotContains(t, text.String(), "(-")
	assert.Contains(t, tsv.String(), "\t-\t-\t-\n")
	for _, line := range strings.Split(strings.TrimSuffix(tsv.String(), "\n"), "\n") {
		assert.Len(t, strings.Split(line, "\t"), len(strings.Split(TSVHeader, "\t")))
	}
}

func TestToAPIReport_NoPairs(t *testing.T) {
	r := ToAPIReport(design.Result{Target: design.NewTarget("x", "AC")}, testMeta)
	assert.NotNil(t, r.Pairs)
	assert.Empty(t, r.Pairs)
}

func TestWriteText(t *testing.T) {
	r := geneXReport(t, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Target gene: geneX")
	assert.Contains(t, out, "ATGCATGCATGCATGCATGCATGC")
	assert.Contains(t, out, "Accepted pairs: 400 (showing 2)")
	assert.Contains(t, out, r.Pairs[0].Forward.Seq)
	assert.Contains(t, out, r.Pairs[1].Reverse.Seq)
	assert.Contains(t, out, "2024-01-02T03:04:05Z")
}

func TestWriteText_Empty(t *testing.T) {
	r := ToAPIReport(design.Result{Target: design.NewTarget("x", "AC")}, testMeta)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "No primer pairs")
}

func TestWriteTSV(t *testing.T) {
	r := geneXReport(t, 4)
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, r))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	cols := strings.Split(lines[0], "\t")
	assert.Len(t, cols, len(strings.Split(TSVHeader, "\t")))
	assert.Equal(t, "geneX", cols[0])
	assert.Equal(t, "1", cols[1])
}

func TestWriteJSON(t *testing.T) {
	r := geneXReport(t, 1)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []api.ReportV1{r}))

	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "geneX", got[0].Target)
	assert.Equal(t, r.Pairs[0].Forward.Seq, got[0].Pairs[0].Forward.Seq)

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
