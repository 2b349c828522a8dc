package design

import "prdesign/internal/primer"

// Accepts reports whether p lies inside the GC and Tm bounds (inclusive).
func (b Bounds) Accepts(p primer.Primer) bool {
	gc, tm := p.GCPercent(), p.Tm()
	return gc >= b.MinGC && gc <= b.MaxGC && tm >= b.MinTm && tm <= b.MaxTm
}

// Filter returns a new slice with the primers b accepts, in input order.
// in is never modified.
func Filter(in []primer.Primer, b Bounds) []primer.Primer {
	out := make([]primer.Primer, 0, len(in))
	for _, p := range in {
		if b.Accepts(p) {
			out = append(out, p)
		}
	}
	return out
}
