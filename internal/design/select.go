package design

import "sort"

// LessPair defines the ranking order: smaller Tm delta first, then shorter
// combined length, then forward and reverse sequence, then forward and
// reverse offsets.
func LessPair(a, b PrimerPair) bool {
	if da, db := a.TmDelta(), b.TmDelta(); da != db {
		return da < db
	}
	if la, lb := a.Len(), b.Len(); la != lb {
		return la < lb
	}
	if a.Forward.Seq() != b.Forward.Seq() {
		return a.Forward.Seq() < b.Forward.Seq()
	}
	if a.Reverse.Seq() != b.Reverse.Seq() {
		return a.Reverse.Seq() < b.Reverse.Seq()
	}
	if a.Forward.Offset() != b.Forward.Offset() {
		return a.Forward.Offset() < b.Forward.Offset()
	}
	return a.Reverse.Offset() < b.Reverse.Offset()
}

// Select returns the best min(n, len(pairs)) pairs in LessPair order.
// pairs is not modified.
func Select(pairs []PrimerPair, n int) []PrimerPair {
	if n <= 0 || len(pairs) == 0 {
		return []PrimerPair{}
	}
	ranked := append([]PrimerPair(nil), pairs...)
	sort.SliceStable(ranked, func(i, j int) bool { return LessPair(ranked[i], ranked[j]) })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
