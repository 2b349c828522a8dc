package design

import (
	"math"
	"sort"

	"prdesign/internal/primer"
)

// PrimerPair is a forward/reverse combination accepted by Pair.
type PrimerPair struct {
	Forward primer.Primer
	Reverse primer.Primer
}

// TmDelta is |Tm(forward) − Tm(reverse)|.
func (pp PrimerPair) TmDelta() float64 {
	return math.Abs(pp.Forward.Tm() - pp.Reverse.Tm())
}

// Len is the combined primer length.
func (pp PrimerPair) Len() int { return pp.Forward.Len() + pp.Reverse.Len() }

// Product returns the amplified span [start, end) on the top strand of a
// target of length n. ok is false when the sites do not face each other: the
// forward site must start no later than the reverse site and end no later
// than it. Overlapping sites still yield a product.
func (pp PrimerPair) Product(n int) (start, end int, ok bool) {
	fs, fe := pp.Forward.Span(n)
	rs, re := pp.Reverse.Span(n)
	if fs > rs || fe > re {
		return 0, 0, false
	}
	return fs, re, true
}

func withinTolerance(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// Pair returns every (forward, reverse) combination whose Tm values differ by
// at most tol. The result is the same set as the full cross product filtered
// by |ΔTm| ≤ tol; the work is a sort plus a sliding window over the reverse
// candidates, so only pairs inside the tolerance band are visited.
//
// Output is ordered by forward input index, then reverse input index.
func Pair(fwd, rev []primer.Primer, tol float64) []PrimerPair {
	if len(fwd) == 0 || len(rev) == 0 || tol < 0 || math.IsNaN(tol) {
		return nil
	}
	fi := byTm(fwd)
	ri := byTm(rev)

	type hit struct{ f, r int }
	var hits []hit

	lo := 0
	for _, f := range fi {
		ft := fwd[f].Tm()
		// Everything below lo is too cold for this forward and for every
		// later (warmer) forward as well.
		for lo < len(ri) && ft-rev[ri[lo]].Tm() > tol {
			lo++
		}
		for k := lo; k < len(ri); k++ {
			if !withinTolerance(ft, rev[ri[k]].Tm(), tol) {
				break
			}
			hits = append(hits, hit{f, ri[k]})
		}
	}

	if len(hits) == 0 {
		return nil
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].f != hits[b].f {
			return hits[a].f < hits[b].f
		}
		return hits[a].r < hits[b].r
	})
	out := make([]PrimerPair, len(hits))
	for i, h := range hits {
		out[i] = PrimerPair{Forward: fwd[h.f], Reverse: rev[h.r]}
	}
	return out
}

// byTm returns the indices of ps ordered by ascending Tm (stable).
func byTm(ps []primer.Primer) []int {
	idx := make([]int, len(ps))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return ps[idx[a]].Tm() < ps[idx[b]].Tm() })
	return idx
}
