package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prdesign/internal/primer"
)

const geneX = "ATGCATGCATGCATGCATGCATGC" // 24 bp

func TestCandidates_LengthConvention(t *testing.T) {
	// Lengths run from minLen+1 to maxLen inclusive: s=4, l=6 → {5, 6}.
	got, err := Candidates(geneX, primer.Forward, 10, 4, 6)
	require.NoError(t, err)
	require.Len(t, got, 20)

	lengths := map[int]int{}
	for _, p := range got {
		lengths[p.Len()]++
	}
	assert.Equal(t, map[int]int{5: 10, 6: 10}, lengths)
}

func TestCandidates_OrderAndOffsets(t *testing.T) {
	got, err := Candidates(geneX, primer.Forward, 10, 4, 6)
	require.NoError(t, err)

	assert.Equal(t, "ATGCA", got[0].Seq())
	assert.Equal(t, "ATGCAT", got[1].Seq())
	for i, p := range got {
		assert.Equal(t, i/2, p.Offset(), "candidate %d", i)
		assert.Equal(t, geneX[p.Offset():p.Offset()+p.Len()], p.Seq())
		assert.Equal(t, primer.Forward, p.Strand())
	}
}

func TestCandidates_DuplicatesKept(t *testing.T) {
	got, err := Candidates(geneX, primer.Forward, 10, 4, 4+1)
	require.NoError(t, err)
	seen := map[string]int{}
	for _, p := range got {
		seen[p.Seq()]++
	}
	// ATGCA occurs at offsets 0, 4 and 8.
	assert.Equal(t, 3, seen["ATGCA"])
}

func TestCandidates_WindowClampedToSequence(t *testing.T) {
	seq := "ACGTACGTAC" // 10 bp
	got, err := Candidates(seq, primer.Forward, 100, 4, 6)
	require.NoError(t, err)
	for _, p := range got {
		assert.LessOrEqual(t, p.Offset()+p.Len(), len(seq), "no truncated candidates")
		assert.GreaterOrEqual(t, p.Len(), 5)
	}
	// 5-mers fit at offsets 0..5, 6-mers at 0..4.
	assert.Len(t, got, 11)
	assert.Equal(t, len(got), CountCandidates(len(seq), 100, 4, 6))
}

func TestCandidates_ShortSequence(t *testing.T) {
	for _, seq := range []string{"", "A", "ATGC"} {
		got, err := Candidates(seq, primer.Forward, 10, 4, 6)
		require.NoError(t, err)
		assert.Empty(t, got, "seq %q", seq)
	}
	// Exactly s+1 bases gives one candidate.
	got, err := Candidates("ATGCA", primer.Forward, 10, 4, 6)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCountCandidates(t *testing.T) {
	cases := []struct{ n, win, s, l int }{
		{24, 10, 4, 6},
		{10, 100, 4, 6},
		{300, 100, 20, 30},
		{25, 100, 20, 30},
		{3, 100, 4, 6},
		{0, 10, 4, 6},
	}
	seq := make([]byte, 300)
	for i := range seq {
		seq[i] = "ACGT"[i%4]
	}
	for _, c := range cases {
		got, err := Candidates(string(seq[:c.n]), primer.Forward, c.win, c.s, c.l)
		require.NoError(t, err)
		assert.Equal(t, len(got), CountCandidates(c.n, c.win, c.s, c.l), "%+v", c)
	}
}
